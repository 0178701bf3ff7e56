// Package notify emails customers about their bookings.
package notify

import (
	"context"
	"fmt"
	"io"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
	"gopkg.in/gomail.v2"

	"github.com/BruksfildServices01/cat-hotel/internal/audit"
)

const qrSize = 256

// Mailer is an audit.Sink that sends a confirmation (with a check-in QR
// code) and a check-out notice. Other events are ignored.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(host string, port int, user, password, from string) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
	}
}

func (m *Mailer) Name() string {
	return "mail"
}

func (m *Mailer) Handle(_ context.Context, ev audit.Event) error {
	msg, err := m.Build(ev)
	if err != nil || msg == nil {
		return err
	}
	return m.dialer.DialAndSend(msg)
}

// Build returns nil when the event does not warrant an email.
func (m *Mailer) Build(ev audit.Event) (*gomail.Message, error) {
	if ev.Recipient == "" {
		return nil, nil
	}
	meta, ok := ev.Metadata.(audit.BookingMeta)
	if !ok {
		return nil, nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", ev.Recipient)

	switch ev.Action {
	case "booking_confirmed":
		msg.SetHeader("Subject", fmt.Sprintf("Booking #%d confirmed", meta.BookingID))
		msg.SetBody("text/plain", confirmationBody(meta))

		png, err := QRCode(meta.BookingID)
		if err != nil {
			return nil, fmt.Errorf("qr code: %w", err)
		}
		name := fmt.Sprintf("booking-%d.png", meta.BookingID)
		msg.Attach(name, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(png)
			return err
		}))

	case "booking_checked_out":
		msg.SetHeader("Subject", fmt.Sprintf("%s has checked out", catName(meta)))
		msg.SetBody("text/plain", checkoutBody(meta))

	default:
		return nil, nil
	}

	return msg, nil
}

// QRCode encodes the booking reference scanned at the front desk.
func QRCode(bookingID uint) ([]byte, error) {
	return qrcode.Encode(Reference(bookingID), qrcode.Medium, qrSize)
}

func Reference(bookingID uint) string {
	return fmt.Sprintf("CATHOTEL-BOOKING-%d", bookingID)
}

func confirmationBody(meta audit.BookingMeta) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Your booking #%d is confirmed.\n\n", meta.BookingID)
	if meta.RoomNumber != "" {
		fmt.Fprintf(&b, "Room: %s\n", meta.RoomNumber)
	}
	fmt.Fprintf(&b, "Guest: %s\n", catName(meta))
	fmt.Fprintf(&b, "Check-in: %s\nCheck-out: %s\n", meta.CheckIn, meta.CheckOut)
	fmt.Fprintf(&b, "Total: %.2f\n\n", meta.TotalPrice)
	b.WriteString("Show the attached QR code at the front desk on arrival.\n")
	return b.String()
}

func checkoutBody(meta audit.BookingMeta) string {
	return fmt.Sprintf(
		"%s has left the hotel (booking #%d). Thank you for staying with us.\n",
		catName(meta),
		meta.BookingID,
	)
}

func catName(meta audit.BookingMeta) string {
	if meta.CatName == "" {
		return "Your cat"
	}
	return meta.CatName
}
