// This file is built with the assumption that the emulator will only be
// connected to a single bluetooth printer at a time.

package printer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tinygo.org/x/bluetooth"
)

type DeviceType byte

const (
	Service  DeviceType = 0x00
	Writer   DeviceType = 0x02
	Notifier DeviceType = 0x03
)

func getUUID(t DeviceType) bluetooth.UUID {
	return bluetooth.NewUUID([16]byte{
		0x00, 0x00, 0xff, byte(t), 0x00, 0x00, 0x10, 0x00, 0x80, 0x00, 0x00, 0x80, 0x5f, 0x9b, 0x34, 0xfb,
	})
}

type BluetoothConnection struct {
	logger   *slog.Logger
	options  Options
	adapter  *bluetooth.Adapter
	address  bluetooth.Address
	device   bluetooth.Device
	writer   bluetooth.DeviceCharacteristic
	notifier bluetooth.DeviceCharacteristic
	printer  *Printer
}

func newBluetoothConnection(logger *slog.Logger, o Options) (*BluetoothConnection, error) {
	adapter := bluetooth.DefaultAdapter
	if err := adapter.Enable(); err != nil {
		return nil, fmt.Errorf("Failed to enable Bluetooth:\n%w", err)
	}

	conn := &BluetoothConnection{logger: logger, options: o, adapter: adapter}
	adapter.SetConnectHandler(func(d bluetooth.Device, connected bool) {
		if connected {
			logger.Info("Connected")
			return
		}
		if d.Address == conn.address && conn.IsConnected() {
			logger.Info("Disconnected")
			conn.printer.Stop()
		} else {
			logger.Debug("Disconnected event fired but printer is not connected or address doesn't match")
		}
	})
	return conn, nil
}

// FromBluetoothName scans until it finds a device advertising name.
func FromBluetoothName(ctx context.Context, logger *slog.Logger, name string, o Options) (*BluetoothConnection, error) {
	conn, err := newBluetoothConnection(logger, o)
	if err != nil {
		return nil, err
	}

	devices := make(chan bluetooth.ScanResult, 1)
	go func() {
		err := conn.adapter.Scan(func(adapter *bluetooth.Adapter, result bluetooth.ScanResult) {
			if result.LocalName() == name {
				logger.Info("Found device", "deviceName", result.LocalName())
				select {
				case devices <- result:
				default:
				}
				adapter.StopScan()
			}
		})
		if err != nil {
			logger.Error("Failed to scan for devices", "err", err)
			close(devices)
		}
	}()

	select {
	case dev, ok := <-devices:
		if !ok {
			return nil, errors.New("No devices found")
		}
		conn.address = dev.Address
		return conn, nil
	case <-ctx.Done():
		conn.adapter.StopScan()
		return nil, fmt.Errorf("Couldn't find printer %q:\n%w", name, ctx.Err())
	}
}

func (c *BluetoothConnection) IsConnected() bool {
	return c.printer != nil && c.printer.Info().State != Disconnected
}

func (c *BluetoothConnection) Write(data []byte) error {
	if _, err := c.writer.WriteWithoutResponse(data); err != nil {
		return err
	}
	c.logger.Debug("Wrote data to device", "size", len(data))
	return nil
}

// Connect connects to the device and waits until the printer has reported its
// status.
func (c *BluetoothConnection) Connect(ctx context.Context) error {
	if c.IsConnected() {
		return nil
	}
	if err := c.connect(); err != nil {
		return fmt.Errorf("Couldn't connect to bluetooth printer:\n%w", err)
	}

	c.printer = NewPrinter(c.logger, c, c.options)
	// notifications carry the ready signal, battery info etc
	if err := c.notifier.EnableNotifications(c.printer.HandleNotification); err != nil {
		c.device.Disconnect()
		return fmt.Errorf("Couldn't enable notifications:\n%w", err)
	}
	c.printer.Start()

	select {
	case <-c.printer.Ready():
		return nil
	case <-ctx.Done():
		c.Disconnect()
		return fmt.Errorf("Printer didn't become ready:\n%w", ctx.Err())
	}
}

func (c *BluetoothConnection) connect() error {
	c.logger.Debug("Connecting to device...")
	device, err := c.adapter.Connect(c.address, bluetooth.ConnectionParams{})
	if err != nil {
		return err
	}

	// the primary service is 0xFF00
	c.logger.Debug("Discovering service...")
	services, err := device.DiscoverServices([]bluetooth.UUID{getUUID(Service)})
	if err != nil {
		device.Disconnect()
		return fmt.Errorf("Failed to discover service:\n%w", err)
	}
	if len(services) == 0 {
		device.Disconnect()
		return errors.New("Device has no printer service")
	}

	c.logger.Debug("Discovering characteristics...")
	characteristics, err := services[0].DiscoverCharacteristics([]bluetooth.UUID{getUUID(Writer), getUUID(Notifier)})
	if err != nil {
		device.Disconnect()
		return fmt.Errorf("Failed to discover characteristics:\n%w", err)
	}
	if len(characteristics) < 2 {
		device.Disconnect()
		return fmt.Errorf("Expected writer and notifier characteristics, found %d", len(characteristics))
	}
	c.writer, c.notifier = characteristics[0], characteristics[1]
	c.device = device
	return nil
}

func (c *BluetoothConnection) Disconnect() error {
	if c.printer == nil {
		return nil
	}
	c.printer.Stop()
	return c.device.Disconnect()
}

// Printer returns the connected printer, or nil before Connect.
func (c *BluetoothConnection) Printer() *Printer {
	return c.printer
}
