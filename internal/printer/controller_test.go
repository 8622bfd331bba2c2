package printer

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"tomgalvin.uk/hp82240/internal/bitmap"
)

var (
	paperLoaded   = []byte{0x1a, 0x06, 0x89}
	paperOut      = []byte{0x1a, 0x06, 0x88}
	printFinished = []byte{0x1a, 0x0f, 0x0c}
)

type fakeWriter struct {
	mu      sync.Mutex
	writes  [][]byte
	onWrite func(data []byte)
}

func (w *fakeWriter) Write(data []byte) error {
	w.mu.Lock()
	w.writes = append(w.writes, bytes.Clone(data))
	onWrite := w.onWrite
	w.mu.Unlock()
	if onWrite != nil {
		onWrite(data)
	}
	return nil
}

func (w *fakeWriter) OnWrite(f func(data []byte)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onWrite = f
}

// waitForWrites waits for the event loop to have written at least n commands
func (w *fakeWriter) waitForWrites(t *testing.T, n int) [][]byte {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if writes := w.Writes(); len(writes) >= n {
			return writes
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("Expected at least %d writes, got %d", n, len(w.Writes()))
	return nil
}

func (w *fakeWriter) Writes() [][]byte {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.writes
}

func testOptions() Options {
	o := DefaultOptions()
	o.Settle = 0
	o.Timeout = time.Second
	return o
}

func aStartedPrinter(t *testing.T, o Options) (*Printer, *fakeWriter) {
	t.Helper()
	w := &fakeWriter{}
	p := NewPrinter(slog.New(slog.NewTextHandler(io.Discard, nil)), w, o)
	p.Start()
	t.Cleanup(p.Stop)

	p.HandleNotification(paperLoaded)
	select {
	case <-p.Ready():
	case <-time.After(time.Second):
		t.Fatal("Printer never became ready")
	}
	return p, w
}

func aBlankBitmap(width, height int) *bitmap.PixelBitmap {
	pixels := make([][]byte, height)
	for y := range pixels {
		pixels[y] = make([]byte, width)
	}
	return bitmap.NewPixelBitmap(pixels)
}

func TestPrintCommandsSplitTallBitmaps(t *testing.T) {
	commands, err := printCommands(aBlankBitmap(200, 300), Low)
	if err != nil {
		t.Fatal(err)
	}
	// init, justify, intensity, two header/data pairs and a feed
	if len(commands) != 8 {
		t.Fatalf("Expected 8 commands, got %d", len(commands))
	}
	if !bytes.Equal(commands[3], printBitmapHeader(25, 256)) {
		t.Errorf("Unexpected first header %x", commands[3])
	}
	if len(commands[4]) != 25*256 {
		t.Errorf("First chunk has %d bytes", len(commands[4]))
	}
	if !bytes.Equal(commands[5], printBitmapHeader(25, 44)) {
		t.Errorf("Unexpected second header %x", commands[5])
	}
	if len(commands[6]) != 25*44 {
		t.Errorf("Second chunk has %d bytes", len(commands[6]))
	}
	if !bytes.Equal(commands[7], feedLines(4)) {
		t.Errorf("Expected a feed at the end, got %x", commands[7])
	}
}

func TestPrintCommandsRejectWideBitmaps(t *testing.T) {
	if _, err := printCommands(aBlankBitmap(8*maxStride+1, 1), Low); err == nil {
		t.Error("Expected an error for a bitmap wider than the printer")
	}
}

func TestStartPollsStatus(t *testing.T) {
	_, w := aStartedPrinter(t, testOptions())
	writes := w.waitForWrites(t, len(statusCommands()))
	if !bytes.Equal(writes[1], queryBatteryStatus()) {
		t.Errorf("Expected a status poll on start, got %x", writes)
	}
}

func TestPrint(t *testing.T) {
	p, w := aStartedPrinter(t, testOptions())
	w.OnWrite(func(data []byte) {
		if bytes.Equal(data, feedLines(4)) {
			p.HandleNotification(printFinished)
		}
	})

	if err := p.Print(context.Background(), aBlankBitmap(166, 20)); err != nil {
		t.Fatal(err)
	}
	found := false
	for _, d := range w.Writes() {
		if bytes.Equal(d, printBitmapHeader(21, 20)) {
			found = true
		}
	}
	if !found {
		t.Error("Bitmap header was never written")
	}
	if s := p.Info().State; s != Ready {
		t.Errorf("Expected printer to be ready after printing, got %s", s)
	}
}

func TestPrintTimesOut(t *testing.T) {
	o := testOptions()
	o.Timeout = 10 * time.Millisecond
	p, _ := aStartedPrinter(t, o)
	if err := p.Print(context.Background(), aBlankBitmap(8, 8)); err == nil {
		t.Error("Expected a timeout when the printer never finishes")
	}
}

func TestPrintCancelled(t *testing.T) {
	p, _ := aStartedPrinter(t, testOptions())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.Print(ctx, aBlankBitmap(8, 8)); err == nil {
		t.Error("Expected an error for a cancelled context")
	}
}

func TestPrintWhenNotReady(t *testing.T) {
	w := &fakeWriter{}
	p := NewPrinter(slog.New(slog.NewTextHandler(io.Discard, nil)), w, testOptions())
	if err := p.Print(context.Background(), aBlankBitmap(8, 8)); err == nil {
		t.Error("Expected an error before the printer is ready")
	}

	p, _ = aStartedPrinter(t, testOptions())
	p.HandleNotification(paperOut)
	if s := p.Info().State; s != OutOfPaper {
		t.Fatalf("Expected OutOfPaper, got %s", s)
	}
	if err := p.Print(context.Background(), aBlankBitmap(8, 8)); err == nil {
		t.Error("Expected an error with no paper")
	}

	p.Stop()
	p.HandleNotification(paperLoaded)
	if s := p.Info().State; s != Disconnected {
		t.Errorf("Expected a stopped printer to stay disconnected, got %s", s)
	}
}

func TestDeviceInfoNotifications(t *testing.T) {
	p, _ := aStartedPrinter(t, testOptions())
	if p.Info().BatteryLevel != -1 {
		t.Errorf("Battery level should be unknown at first")
	}
	p.HandleNotification([]byte{0x1a, 0x04, 87})
	p.HandleNotification([]byte{0x1a, 0x07, 1, 2, 3})
	// truncated notifications are ignored
	p.HandleNotification([]byte{0x1a, 0x07, 9})

	i := p.Info()
	if i.BatteryLevel != 87 || i.FirmwareVersion != "1.2.3" {
		t.Errorf("Unexpected device info %+v", i)
	}
}

func TestStateString(t *testing.T) {
	if OutOfPaper.String() != "OutOfPaper" || State(42).String() != "State(42)" {
		t.Error("Unexpected state names")
	}
}
