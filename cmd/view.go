package cmd

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"tomgalvin.uk/hp82240/internal/font"
	"tomgalvin.uk/hp82240/internal/keyboard"
	"tomgalvin.uk/hp82240/internal/paper"
)

// A terminal cell shows a braille pattern of cellWidth by cellHeight pixels.
const (
	cellWidth  = 2
	cellHeight = 4
)

// braille dot bits, indexed by [y][x] within a cell
var brailleDots = [cellHeight][cellWidth]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

var (
	paperStyle  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	statusStyle = tcell.StyleDefault.Reverse(true)
)

var viewFlags struct {
	codePage string
	keys     int
}

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Show the paper roll in the terminal",
	Long: `View prints the stream read from file, or streamed from standard input when
the file is "-", and shows the paper in the terminal. Typed keys are printed
as well.

Keys: arrows, PgUp/PgDn, Home/End scroll; Ctrl-L tears off the paper; Ctrl-R
resets the printer; Esc or Ctrl-C quits.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := parseCodePage(viewFlags.codePage)
		if err != nil {
			return err
		}
		session, err := paper.NewSession(logger.With("src", "paper"), cfg.Paper)
		if err != nil {
			return err
		}

		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("Couldn't open terminal:\n%w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("Couldn't initialise terminal:\n%w", err)
		}
		defer screen.Fini()

		v := newViewer(screen, session, page, keyboard.New(viewFlags.keys))
		defer v.keys.Close()

		if len(args) == 1 {
			if args[0] == "-" {
				go v.stream(os.Stdin)
			} else {
				data, err := os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("Couldn't read printer stream:\n%w", err)
				}
				session.Append(data)
			}
		}
		go v.typist()
		return v.run()
	},
}

func init() {
	viewCmd.Flags().StringVar(&viewFlags.codePage, "code-page", "roman8", "code page typed keys are encoded in: roman8 or ecma94")
	viewCmd.Flags().IntVar(&viewFlags.keys, "keys", 32, "number of typed keys buffered before the oldest is dropped")
	rootCmd.AddCommand(viewCmd)
}

type viewer struct {
	screen  tcell.Screen
	session *paper.Session
	page    font.CodePage
	keys    *keyboard.Buffer

	// display width in pixels
	width int
	// first raster row shown, in cells
	scroll int
	status string
}

func newViewer(screen tcell.Screen, s *paper.Session, page font.CodePage, keys *keyboard.Buffer) *viewer {
	v := &viewer{
		screen:  screen,
		session: s,
		page:    page,
		keys:    keys,
	}
	s.OnPrinted = v.follow
	s.OnSelfTest = func() {
		v.status = "self test"
	}
	v.resize()
	return v
}

// stream prints everything read from r. Reads happen here; printing happens
// on the event loop.
func (v *viewer) stream(r io.Reader) {
	buf := make([]byte, 512)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			v.screen.PostEventWait(tcell.NewEventInterrupt(append([]byte(nil), buf[:n]...)))
		}
		if err != nil {
			if err != io.EOF {
				logger.Error("Couldn't read printer stream", "error", err)
			}
			return
		}
	}
}

// typist hands typed keys to the event loop until the keyboard is closed.
func (v *viewer) typist() {
	for {
		key, ok := v.keys.Wait()
		if !ok {
			return
		}
		v.screen.PostEventWait(tcell.NewEventInterrupt([]byte{byte(key)}))
	}
}

func (v *viewer) run() error {
	for {
		v.draw()
		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			v.resize()
			v.screen.Sync()
		case *tcell.EventInterrupt:
			if data, ok := ev.Data().([]byte); ok {
				v.session.Append(data)
			}
		case *tcell.EventKey:
			if quit := v.handleKey(ev); quit {
				return nil
			}
		}
	}
}

func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	_, rows := v.screen.Size()
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		v.scrollTo(v.scroll - 1)
	case tcell.KeyDown:
		v.scrollTo(v.scroll + 1)
	case tcell.KeyPgUp:
		v.scrollTo(v.scroll - rows + 1)
	case tcell.KeyPgDn:
		v.scrollTo(v.scroll + rows - 1)
	case tcell.KeyHome:
		v.scrollTo(0)
	case tcell.KeyEnd:
		v.follow(v.session.Surface().Bottom())
	case tcell.KeyCtrlL:
		v.session.Clear()
		v.scroll = 0
		v.status = "paper torn off"
	case tcell.KeyCtrlR:
		v.session.ResetPrinter()
		v.status = "printer reset"
	case tcell.KeyEnter:
		v.keys.Put('\n')
	case tcell.KeyRune:
		for _, b := range font.Encode(v.page, string(ev.Rune())) {
			v.keys.Put(int(b))
		}
	}
	return false
}

// resize tells the session how many pixels the terminal now holds.
func (v *viewer) resize() {
	cols, rows := v.screen.Size()
	if width := cols * cellWidth; width != v.width {
		v.width = width
		v.session.OnDisplayWidthChanged(width)
	}
	v.session.SetDisplaySize(v.width, max(0, rows-1)*cellHeight)
	v.scrollTo(v.scroll)
}

func (v *viewer) scrollTo(row int) {
	_, rows := v.screen.Size()
	last := (v.session.Surface().Height()+cellHeight-1)/cellHeight - (rows - 1)
	v.scroll = max(0, min(row, last))
}

// follow scrolls just far enough to show the raster down to bottom.
func (v *viewer) follow(bottom int) {
	_, rows := v.screen.Size()
	end := (bottom + cellHeight - 1) / cellHeight
	if end > v.scroll+rows-1 || end < v.scroll {
		v.scrollTo(end - (rows - 1))
	}
}

func (v *viewer) draw() {
	v.screen.Clear()
	cols, rows := v.screen.Size()
	raster := v.session.Paint()
	b := raster.Bounds()

	left := max(0, (cols*cellWidth-b.Dx())/2/cellWidth)
	for cy := range max(0, rows-1) {
		y := (v.scroll + cy) * cellHeight
		if y >= b.Max.Y {
			break
		}
		for cx := 0; cx*cellWidth < b.Dx() && left+cx < cols; cx++ {
			v.screen.SetContent(left+cx, cy, cellPattern(raster, cx*cellWidth, y), nil, paperStyle)
		}
	}
	v.drawStatus(cols, rows)
	v.screen.Show()
}

// cellPattern is the braille character for the pixels of one cell whose top
// left corner is at (x, y).
func cellPattern(raster *image.Paletted, x, y int) rune {
	r := rune(0x2800)
	b := raster.Bounds()
	for dy := range cellHeight {
		for dx := range cellWidth {
			p := image.Pt(x+dx, y+dy)
			if p.In(b) && raster.ColorIndexAt(p.X, p.Y) != 0 {
				r |= brailleDots[dy][dx]
			}
		}
	}
	return r
}

func (v *viewer) drawStatus(cols, rows int) {
	s := v.session
	line := fmt.Sprintf(" %d lines  zoom %d  %s", s.LineCount(), s.Zoom(), s.State().CodePage)
	if st := s.State(); st.Expanded || st.Underline {
		line += fmt.Sprintf("  expanded=%t underline=%t", st.Expanded, st.Underline)
	}
	if v.status != "" {
		line += "  " + v.status
	}
	for x := range cols {
		c := ' '
		if x < len(line) {
			c = rune(line[x])
		}
		v.screen.SetContent(x, rows-1, c, nil, statusStyle)
	}
}
