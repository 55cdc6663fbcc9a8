package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/Ilhomjon565/kutubxona-uit/config"
	"github.com/Ilhomjon565/kutubxona-uit/internal/model"
	"github.com/Ilhomjon565/kutubxona-uit/utils"
)

type Mailer struct {
	cfg    *config.Config
	client *mail.Client
}

func NewMailer(cfg *config.Config) (*Mailer, error) {
	client, err := mail.NewClient(
		cfg.Mail.Host,
		mail.WithPort(cfg.Mail.Port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(cfg.Mail.Address),
		mail.WithPassword(cfg.Mail.Password),
		mail.WithTimeout(120*time.Second),
	)
	if err != nil {
		slog.Error("failed to create mail client", slog.String("err", err.Error()))
		return nil, err
	}

	return &Mailer{cfg: cfg, client: client}, nil
}

// SendNewBookAlert mails one subscriber about a newly published book.
func (m *Mailer) SendNewBookAlert(ctx context.Context, to string, book model.Book) error {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "Mailer.SendNewBookAlert"
	slog.Info("SendNewBookAlert start", slog.String("rqID", rqID), slog.String("op", op), slog.String("to", to), slog.String("bookID", book.ID))

	msg := mail.NewMsg()
	if err := msg.From(m.cfg.Mail.Address); err != nil {
		slog.Error("failed to set From address", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return err
	}
	if err := msg.To(to); err != nil {
		slog.Error("failed to set To address", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return err
	}

	msg.Subject("Yangi Kitob Qo'shildi! - UIT Kutubxona")
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
		"Yangi kitob: %s\nKategoriya: %s\n\nBatafsil: %s/books/%s\n",
		book.Title, book.Category, m.cfg.SiteUrl, book.ID,
	))

	if err := m.client.DialAndSend(msg); err != nil {
		return fmt.Errorf("error while dialing smtp: %w", err)
	}

	slog.Info("SendNewBookAlert finished", slog.String("rqID", rqID), slog.String("op", op), slog.String("to", to))

	return nil
}
