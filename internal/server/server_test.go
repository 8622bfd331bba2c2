package server

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"tomgalvin.uk/hp82240/internal/bitmap"
	"tomgalvin.uk/hp82240/internal/font"
	"tomgalvin.uk/hp82240/internal/journal"
	"tomgalvin.uk/hp82240/internal/model"
	"tomgalvin.uk/hp82240/internal/paper"
	"tomgalvin.uk/hp82240/internal/printer"
	"tomgalvin.uk/hp82240/internal/protocol"
)

type fakePrinter struct {
	info    printer.DeviceInfo
	printed []bitmap.Bitmap
}

func (p *fakePrinter) Info() printer.DeviceInfo {
	return p.info
}

func (p *fakePrinter) Print(ctx context.Context, b bitmap.Bitmap) error {
	p.printed = append(p.printed, bitmap.PackBitmap(b))
	return nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func aPaperSession(t *testing.T) *paper.Session {
	t.Helper()
	s, err := paper.NewSession(discard(), paper.DefaultGeometry())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func aServer(t *testing.T, j *journal.Journal, p Hardcopier) (*Server, *paper.Session) {
	t.Helper()
	s := aPaperSession(t)
	srv, err := NewServer(discard(), s, j, p)
	if err != nil {
		t.Fatal(err)
	}
	return srv, s
}

func do(t *testing.T, h http.Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(method, target, bytes.NewReader(body))
	if body != nil {
		r.Header.Set("Content-Type", "application/octet-stream")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("Couldn't decode response %q: %v", w.Body.String(), err)
	}
	return v
}

func TestPrint(t *testing.T) {
	srv, s := aServer(t, nil, nil)
	h := srv.Handler()

	w := do(t, h, http.MethodPost, "/print", []byte("Hi\n"))
	if w.Code != http.StatusOK {
		t.Fatalf("Print failed: %d %s", w.Code, w.Body.String())
	}
	res := decode[model.PrintResponse](t, w)
	g := s.Geometry()
	if res.Lines != 1 || res.GrewTo != g.VerticalMargin/2+2*g.LineHeight {
		t.Errorf("Unexpected print response %+v", res)
	}
	if string(s.Log()) != "Hi\n" {
		t.Errorf("Session log is %q", s.Log())
	}
}

func TestPrintRequiresOctetStream(t *testing.T) {
	srv, _ := aServer(t, nil, nil)
	r := httptest.NewRequest(http.MethodPost, "/print", bytes.NewReader([]byte("Hi")))
	r.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, r)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
}

func TestPaperImage(t *testing.T) {
	srv, s := aServer(t, nil, nil)
	h := srv.Handler()
	do(t, h, http.MethodPost, "/print", []byte("Hello\n"))

	w := do(t, h, http.MethodGet, "/paper.png", nil)
	img, err := png.Decode(w.Body)
	if err != nil {
		t.Fatalf("Couldn't decode paper image: %v", err)
	}
	if img.Bounds() != s.Paint().Rect {
		t.Errorf("Image is %v, paper is %v", img.Bounds(), s.Paint().Rect)
	}
}

func TestClearAndReset(t *testing.T) {
	srv, s := aServer(t, nil, nil)
	h := srv.Handler()
	do(t, h, http.MethodPost, "/print", append(protocol.CodePageCommand(font.ECMA94), "x\n"...))

	if w := do(t, h, http.MethodDelete, "/paper", nil); w.Code != http.StatusNoContent {
		t.Fatalf("Clear failed: %d", w.Code)
	}
	info := decode[model.PaperResponse](t, do(t, h, http.MethodGet, "/paper", nil))
	if info.Lines != 0 || info.Bytes != 0 || info.CodePage != "ECMA94" {
		t.Errorf("Clearing should empty the paper but keep the code page: %+v", info)
	}

	do(t, h, http.MethodPost, "/reset", nil)
	if s.State().CodePage != font.Roman8 {
		t.Errorf("Reset should select Roman8")
	}
}

func TestDisplay(t *testing.T) {
	srv, s := aServer(t, nil, nil)
	h := srv.Handler()
	width := 3 * s.Geometry().MinDisplayWidth()

	w := do(t, h, http.MethodPut, "/display?width="+strconv.Itoa(width), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Display change failed: %d %s", w.Code, w.Body.String())
	}
	if info := decode[model.PaperResponse](t, w); info.Zoom != 3 || info.Width != width {
		t.Errorf("Unexpected paper after resize: %+v", info)
	}

	for _, target := range []string{"/display", "/display?width=abc", "/display?width=10&height=-1"} {
		if w := do(t, h, http.MethodPut, target, nil); w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, w.Code)
		}
	}
}

func TestHardcopy(t *testing.T) {
	bare, _ := aServer(t, nil, nil)
	if w := do(t, bare.Handler(), http.MethodPost, "/hardcopy", nil); w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503 without a printer, got %d", w.Code)
	}

	p := &fakePrinter{info: printer.DeviceInfo{State: printer.Ready, BatteryLevel: 80}}
	srv, s := aServer(t, nil, p)
	h := srv.Handler()
	if w := do(t, h, http.MethodPost, "/hardcopy", nil); w.Code != http.StatusConflict {
		t.Errorf("Expected 409 for blank paper, got %d", w.Code)
	}

	do(t, h, http.MethodPost, "/print", []byte("Hi\nthere\n"))
	if w := do(t, h, http.MethodPost, "/hardcopy", nil); w.Code != http.StatusNoContent {
		t.Fatalf("Hardcopy failed: %d %s", w.Code, w.Body.String())
	}
	if len(p.printed) != 1 {
		t.Fatalf("Expected one hardcopy, got %d", len(p.printed))
	}
	g := s.Geometry()
	if b := p.printed[0]; b.Width() != g.PaperWidth || b.Height() != 2*g.LineHeight {
		t.Errorf("Unexpected hardcopy size %dx%d", b.Width(), b.Height())
	}
	if bitmap.Ink(p.printed[0]) == 0 {
		t.Errorf("Hardcopy is blank")
	}

	if w := do(t, h, http.MethodPost, "/hardcopy?caption=Saved", nil); w.Code != http.StatusNoContent {
		t.Fatalf("Captioned hardcopy failed: %d %s", w.Code, w.Body.String())
	}
	if b := p.printed[1]; b.Height() <= 2*g.LineHeight || bitmap.Ink(b) <= bitmap.Ink(p.printed[0]) {
		t.Errorf("Expected a caption above the paper, got %dx%d", b.Width(), b.Height())
	}

	w := do(t, h, http.MethodGet, "/battery", nil)
	if w.Body.String() != "80" {
		t.Errorf("Expected battery level 80, got %q", w.Body.String())
	}
	if info := decode[model.DeviceInfoResponse](t, do(t, h, http.MethodGet, "/printer", nil)); info.State != "Ready" {
		t.Errorf("Unexpected printer info %+v", info)
	}
}

func TestJournalRestoresPaper(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	j, err := journal.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer j.Close()

	srv, s := aServer(t, j, nil)
	h := srv.Handler()
	do(t, h, http.MethodPost, "/print", []byte("one\n"))
	do(t, h, http.MethodPost, "/print", append(protocol.CodePageCommand(font.ECMA94), "two\n"...))

	restarted, restored := aServer(t, j, nil)
	if !bytes.Equal(restored.Log(), s.Log()) || restored.State() != s.State() {
		t.Fatalf("Restored log %q, want %q", restored.Log(), s.Log())
	}

	// tearing off keeps the code page across restarts
	do(t, restarted.Handler(), http.MethodDelete, "/paper", nil)
	_, again := aServer(t, j, nil)
	if again.LineCount() != 0 || again.State().CodePage != font.ECMA94 {
		t.Errorf("Expected blank ECMA94 paper, got %d lines in %s", again.LineCount(), again.State().CodePage)
	}
}

func TestJournalRestoreIsSilent(t *testing.T) {
	j, err := journal.Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer j.Close()

	srv, _ := aServer(t, j, nil)
	do(t, srv.Handler(), http.MethodPost, "/print", protocol.SelfTestCommand())
	do(t, srv.Handler(), http.MethodPost, "/print", append([]byte("x\n"), protocol.SelfTestCommand()...))

	s := aPaperSession(t)
	selfTests := 0
	s.OnSelfTest = func() {
		selfTests++
	}
	restarted, err := NewServer(discard(), s, j, nil)
	if err != nil {
		t.Fatal(err)
	}
	if selfTests != 0 {
		t.Errorf("Restoring the journal ran %d self tests", selfTests)
	}

	do(t, restarted.Handler(), http.MethodPost, "/print", protocol.SelfTestCommand())
	if selfTests != 1 {
		t.Errorf("Expected a new self test to be reported, got %d", selfTests)
	}
}
