package facades

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"time"

	gomail "github.com/wneessen/go-mail"

	"github.com/sbilibin2017/gw-invest-ledger/internal/logger"
	"github.com/sbilibin2017/gw-invest-ledger/internal/models"
)

const defaultSMTPTimeout = 15 * time.Second

// SMTPNotifierFacade delivers notifications as multipart e-mails.
type SMTPNotifierFacade struct {
	host     string
	port     int
	user     string
	password string
	from     string
	secure   bool
}

// NewSMTPNotifierFacade creates a new SMTP notifier. With secure set the
// connection uses implicit TLS, otherwise STARTTLS is negotiated when the
// server offers it.
func NewSMTPNotifierFacade(host string, port int, user, password, from string, secure bool) *SMTPNotifierFacade {
	return &SMTPNotifierFacade{
		host:     host,
		port:     port,
		user:     user,
		password: password,
		from:     from,
		secure:   secure,
	}
}

// Notify sends n. The whole SMTP exchange is bounded by the ctx deadline.
func (f *SMTPNotifierFacade) Notify(ctx context.Context, n models.Notification) error {
	if n.To == "" {
		return errors.New("notification has no recipient")
	}

	msg, err := newMessage(f.from, n)
	if err != nil {
		return err
	}

	client, err := f.newClient(ctx)
	if err != nil {
		return err
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		logger.Log.Errorw("failed to send mail", "to", n.To, "subject", n.Subject, "error", err)
		return err
	}
	logger.Log.Infow("mail sent", "to", n.To, "subject", n.Subject)
	return nil
}

func (f *SMTPNotifierFacade) newClient(ctx context.Context) (*gomail.Client, error) {
	timeout := defaultSMTPTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, ctx.Err()
		}
	}

	opts := []gomail.Option{
		gomail.WithPort(f.port),
		gomail.WithTimeout(timeout),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
		gomail.WithDialContextFunc(f.dial),
	}
	if f.user != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(f.user),
			gomail.WithPassword(f.password),
		)
	}
	return gomail.NewClient(f.host, opts...)
}

// dial opens the connection and pins its deadline to the dial context, so a
// server that stalls mid-session cannot hold the send open.
func (f *SMTPNotifierFacade) dial(ctx context.Context, network, address string) (net.Conn, error) {
	netDialer := &net.Dialer{}

	var (
		conn net.Conn
		err  error
	)
	if f.secure {
		tlsDialer := &tls.Dialer{
			NetDialer: netDialer,
			Config:    &tls.Config{ServerName: f.host, MinVersion: tls.VersionTLS12},
		}
		conn, err = tlsDialer.DialContext(ctx, network, address)
	} else {
		conn, err = netDialer.DialContext(ctx, network, address)
	}
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", address, err)
	}

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(defaultSMTPTimeout)
	}
	if err := conn.SetDeadline(deadline); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return conn, nil
}

// newMessage renders a multipart/alternative message with a plain text
// and an HTML part.
func newMessage(from string, n models.Notification) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", from, err)
	}
	if err := msg.To(n.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", n.To, err)
	}
	msg.Subject(n.Subject)
	msg.SetDate()

	switch {
	case n.Text != "" && n.HTML != "":
		msg.SetBodyString(gomail.TypeTextPlain, n.Text)
		msg.AddAlternativeString(gomail.TypeTextHTML, n.HTML)
	case n.HTML != "":
		msg.SetBodyString(gomail.TypeTextHTML, n.HTML)
	default:
		msg.SetBodyString(gomail.TypeTextPlain, n.Text)
	}
	return msg, nil
}
