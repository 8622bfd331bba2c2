package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"tomgalvin.uk/hp82240/internal/bitmap"
	"tomgalvin.uk/hp82240/internal/caption"
	"tomgalvin.uk/hp82240/internal/journal"
	"tomgalvin.uk/hp82240/internal/model"
	"tomgalvin.uk/hp82240/internal/paper"
	"tomgalvin.uk/hp82240/internal/printer"
	"tomgalvin.uk/hp82240/internal/protocol"
)

// largest print request accepted, in bytes
const maxPrintSize = 1 << 20

// Hardcopier prints a copy of the paper on a real printer.
type Hardcopier interface {
	Info() printer.DeviceInfo
	Print(ctx context.Context, b bitmap.Bitmap) error
}

// Server exposes one paper session over HTTP. The session is not safe for
// concurrent use, so every request that touches it holds mu.
type Server struct {
	logger *slog.Logger

	mu      sync.Mutex
	session *paper.Session

	journal        *journal.Journal
	journalSession *journal.Session

	printer Hardcopier
}

// NewServer wraps a paper session. journal and printer are optional. With a
// journal, the paper left by the previous run is printed again first.
func NewServer(logger *slog.Logger, s *paper.Session, j *journal.Journal, p Hardcopier) (*Server, error) {
	srv := &Server{
		logger:  logger,
		session: s,
		journal: j,
		printer: p,
	}
	if j != nil {
		if err := srv.restore(); err != nil {
			return nil, err
		}
	}
	return srv, nil
}

// restore replays the journal into the session and compacts it down to what
// the paper still shows.
func (s *Server) restore() error {
	js, err := s.journal.Resume()
	if err != nil {
		return fmt.Errorf("Couldn't resume journal session:\n%w", err)
	}
	s.journalSession = js

	n, err := s.journal.Replay(js, func(d []byte) { s.session.Load(d) })
	if err != nil {
		return err
	}
	snapshot := s.session.Snapshot()
	err = s.journal.Transact(func(tx *sql.Tx) error {
		return s.journal.Compact(tx, js, snapshot)
	})
	if err != nil {
		return fmt.Errorf("Couldn't compact journal:\n%w", err)
	}
	s.logger.Info("Restored paper from journal",
		"session", js.Uuid,
		"jobs", n,
		"bytes", len(snapshot),
	)
	return nil
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /print", s.handlePrint)
	mux.HandleFunc("POST /reset", s.handleReset)
	mux.HandleFunc("GET /paper", s.handlePaper)
	mux.HandleFunc("GET /paper.png", s.handlePaperImage)
	mux.HandleFunc("DELETE /paper", s.handleClear)
	mux.HandleFunc("PUT /display", s.handleDisplay)
	mux.HandleFunc("POST /hardcopy", s.handleHardcopy)
	mux.HandleFunc("GET /printer", s.handlePrinter)
	mux.HandleFunc("GET /battery", s.handleBattery)
	return mux
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Couldn't write response", "error", err)
	}
}

func (s *Server) handlePrint(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Content-Type") != "application/octet-stream" {
		http.Error(w, "Invalid content type", http.StatusBadRequest)
		return
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPrintSize))
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	res, err := s.print(body)
	if err != nil {
		s.logger.Error("Couldn't print", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, res)
}

func (s *Server) print(data []byte) (model.PrintResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.journal != nil && len(data) > 0 {
		err := s.journal.Transact(func(tx *sql.Tx) error {
			_, err := s.journal.Append(tx, s.journalSession, data)
			return err
		})
		if err != nil {
			return model.PrintResponse{}, fmt.Errorf("Couldn't journal print job:\n%w", err)
		}
	}

	grewTo := s.session.Append(data)
	s.logger.Debug("Printed", "bytes", len(data), "grewTo", grewTo)
	return model.PrintResponse{GrewTo: grewTo, Lines: s.session.LineCount()}, nil
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	res, err := s.print(protocol.ResetCommand())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, res)
}

func (s *Server) paperInfo() model.PaperResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := model.FromSession(s.session)
	if s.journalSession != nil {
		res.Session = s.journalSession.Uuid.String()
	}
	return res
}

func (s *Server) handlePaper(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.paperInfo())
}

func (s *Server) handlePaperImage(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, s.session.Paint()); err != nil {
		s.logger.Error("Couldn't encode paper", "error", err)
	}
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.journal != nil {
		// the decoder state outlives the paper, so the journal keeps the
		// commands that restore it
		state := s.session.State().Restore()
		err := s.journal.Transact(func(tx *sql.Tx) error {
			return s.journal.Compact(tx, s.journalSession, state)
		})
		if err != nil {
			s.logger.Error("Couldn't clear journal", "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
	s.session.Clear()
	s.logger.Info("Paper torn off")
	w.WriteHeader(http.StatusNoContent)
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
	return n, nil
}

func (s *Server) handleDisplay(w http.ResponseWriter, r *http.Request) {
	width, err := queryInt(r, "width", 0)
	if err == nil && width == 0 {
		err = fmt.Errorf("width is required")
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	height, err := queryInt(r, "height", 0)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	if height > 0 {
		s.session.SetDisplaySize(width, height)
		s.session.Rebuild()
	} else {
		s.session.OnDisplayWidthChanged(width)
	}
	s.mu.Unlock()

	s.writeJSON(w, s.paperInfo())
}

func (s *Server) handleHardcopy(w http.ResponseWriter, r *http.Request) {
	if s.printer == nil {
		http.Error(w, "No printer configured", http.StatusServiceUnavailable)
		return
	}

	s.mu.Lock()
	printout := s.session.Printout()
	s.mu.Unlock()
	if printout.Rect.Empty() {
		http.Error(w, "Nothing to print", http.StatusConflict)
		return
	}

	c, err := caption.Render(r.URL.Query().Get("caption"), printout.Rect.Dx(), caption.DefaultOptions())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	b, err := bitmap.FromPaletted(caption.Above(c, printout))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := s.printer.Print(r.Context(), b); err != nil {
		s.logger.Error("Couldn't print hardcopy", "error", err)
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	s.logger.Info("Printed hardcopy", "rows", b.Height())
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePrinter(w http.ResponseWriter, r *http.Request) {
	if s.printer == nil {
		http.Error(w, "No printer configured", http.StatusServiceUnavailable)
		return
	}
	s.writeJSON(w, model.FromDeviceInfo(s.printer.Info()))
}

func (s *Server) handleBattery(w http.ResponseWriter, r *http.Request) {
	if s.printer == nil {
		http.Error(w, "printer not connected", http.StatusServiceUnavailable)
		return
	}
	i := s.printer.Info()
	if i.State == printer.Disconnected || i.BatteryLevel < 0 {
		http.Error(w, "printer not connected", http.StatusServiceUnavailable)
		return
	}
	fmt.Fprintf(w, "%v", i.BatteryLevel)
}
