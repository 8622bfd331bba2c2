package printer

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"tomgalvin.uk/hp82240/internal/bitmap"
)

type Options struct {
	// StatusInterval is how often battery and paper status are polled.
	StatusInterval time.Duration
	// Settle is how long to ignore "finished" signals after writing a bitmap.
	// The device sometimes sends an early one right after the data is
	// written, as well as the real one once printing is done.
	Settle time.Duration
	// Timeout bounds the wait for the printer to finish a hardcopy.
	Timeout   time.Duration
	Intensity LaserIntensity
}

func DefaultOptions() Options {
	return Options{
		StatusInterval: 10 * time.Second,
		Settle:         100 * time.Millisecond,
		Timeout:        30 * time.Second,
		Intensity:      Low,
	}
}

type job struct {
	ctx      context.Context
	commands [][]byte
	result   chan error
}

// Printer drives one connected Phomemo printer. Writes to the device happen on
// a single event loop goroutine; notifications from the device may arrive on
// any goroutine.
type Printer struct {
	logger  *slog.Logger
	writer  DeviceWriter
	options Options

	queue    chan job
	finished chan struct{}
	ready    chan struct{}
	done     chan struct{}
	stopOnce sync.Once

	mu   sync.Mutex
	info DeviceInfo
}

func NewPrinter(logger *slog.Logger, w DeviceWriter, o Options) *Printer {
	return &Printer{
		logger:   logger,
		writer:   w,
		options:  o,
		queue:    make(chan job),
		finished: make(chan struct{}, 1),
		ready:    make(chan struct{}),
		done:     make(chan struct{}),
		info: DeviceInfo{
			State:        Connecting,
			BatteryLevel: -1,
		},
	}
}

// Start polls the printer status and starts the event loop. The printer
// becomes Ready once it has reported that paper is loaded.
func (p *Printer) Start() {
	go p.eventLoop()
}

// Ready is closed once the printer has first reported its paper status.
func (p *Printer) Ready() <-chan struct{} {
	return p.ready
}

// Stop ends the event loop and marks the printer as disconnected. Jobs waiting
// for the printer fail.
func (p *Printer) Stop() {
	p.stopOnce.Do(func() {
		p.mu.Lock()
		p.info.State = Disconnected
		p.mu.Unlock()
		close(p.done)
	})
}

func (p *Printer) Info() DeviceInfo {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.info
}

func (p *Printer) setState(s State) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.info.State = s
}

// Print sends a bitmap to the printer and waits until it has been printed.
func (p *Printer) Print(ctx context.Context, b bitmap.Bitmap) error {
	commands, err := printCommands(b, p.options.Intensity)
	if err != nil {
		return err
	}

	switch s := p.Info().State; s {
	case Ready, Busy:
	default:
		return fmt.Errorf("Printer is not in ready state: %s", s)
	}

	j := job{ctx: ctx, commands: commands, result: make(chan error, 1)}
	select {
	case p.queue <- j:
	case <-p.done:
		return fmt.Errorf("Printer disconnected while waiting for print operation")
	case <-ctx.Done():
		return ctx.Err()
	}
	// the event loop always answers a job it has taken
	return <-j.result
}

func (p *Printer) eventLoop() {
	ticker := time.NewTicker(p.options.StatusInterval)
	defer ticker.Stop()

	p.pollStatus()
	for {
		select {
		case j := <-p.queue:
			j.result <- p.print(j)
		case <-ticker.C:
			p.pollStatus()
		case <-p.done:
			p.logger.Info("Writer: stopped")
			return
		}
	}
}

func (p *Printer) write(commands [][]byte) error {
	for _, command := range commands {
		if err := p.writer.Write(command); err != nil {
			return fmt.Errorf("Couldn't write command data:\n%w", err)
		}
	}
	return nil
}

func (p *Printer) pollStatus() {
	if p.Info().State == Busy {
		return
	}
	p.logger.Debug("Polling device status")
	if err := p.write(statusCommands()); err != nil {
		p.logger.Error("Couldn't poll status", "error", err)
	}
}

func (p *Printer) print(j job) error {
	p.setState(Busy)
	defer func() {
		p.mu.Lock()
		if p.info.State == Busy {
			p.info.State = Ready
		}
		p.mu.Unlock()
	}()

	p.drainFinished()
	p.logger.Info("Writer: sending bitmap data to printer", "commands", len(j.commands))
	if err := p.write(j.commands); err != nil {
		return err
	}
	if p.options.Settle > 0 {
		time.Sleep(p.options.Settle)
		p.drainFinished()
	}

	p.logger.Info("Waiting for printer to finish printing")
	timeout := time.NewTimer(p.options.Timeout)
	defer timeout.Stop()
	select {
	case <-p.finished:
		p.logger.Info("Printer finished printing")
		return nil
	case <-timeout.C:
		return fmt.Errorf("Printer didn't finish printing within %s", p.options.Timeout)
	case <-j.ctx.Done():
		return j.ctx.Err()
	case <-p.done:
		return fmt.Errorf("Printer disconnected before it finished printing")
	}
}

func (p *Printer) drainFinished() {
	select {
	case <-p.finished:
	default:
	}
}

func hasPrefix(d []byte, b ...byte) bool {
	return len(d) >= len(b) && bytes.Equal(d[:len(b)], b)
}

// HandleNotification interprets a notification sent by the printer.
func (p *Printer) HandleNotification(d []byte) {
	switch {
	case hasPrefix(d, 0x02, 0xb6, 0x00):
		p.logger.Debug("Printer ready for printing")
	case hasPrefix(d, 0x1a, 0x0f, 0x0c):
		p.onFinished()
	case hasPrefix(d, 0x1a, 0x3b, 0x04):
		// only seen this with later firmware version
		p.logger.Debug("Printer info", "info", d[3:])
	case hasPrefix(d, 0x1a, 0x04) && len(d) >= 3:
		p.onBatteryLevelChange(int(d[2]))
	case hasPrefix(d, 0x1a, 0x07) && len(d) >= 5:
		p.onFirmwareVersionReceived(fmt.Sprintf("%v.%v.%v", d[2], d[3], d[4]))
	case hasPrefix(d, 0x1a, 0x06) && len(d) >= 3 && (d[2] == 0x88 || d[2] == 0x89):
		p.onPaperStatusChange(d[2]&1 == 1)
	case hasPrefix(d, 0x01, 0x01):
		p.logger.Debug("Read command successfully")
	default:
		p.logger.Info("Received unknown notification",
			"data", fmt.Sprintf("%x", d),
		)
	}
}

func (p *Printer) onFinished() {
	select {
	case p.finished <- struct{}{}:
	default:
		// a signal is already pending
	}
}

func (p *Printer) onBatteryLevelChange(level int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.info.BatteryLevel = level
}

func (p *Printer) onFirmwareVersionReceived(version string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.info.FirmwareVersion = version
}

func (p *Printer) onPaperStatusChange(loaded bool) {
	p.mu.Lock()
	old := p.info.State
	switch {
	case old == Disconnected:
	case loaded && old != Busy:
		p.info.State = Ready
	case !loaded:
		p.info.State = OutOfPaper
	}
	p.mu.Unlock()

	p.logger.Info("Paper status changed", "loaded", loaded)
	if old == Connecting {
		close(p.ready)
	}
}
