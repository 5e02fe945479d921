package email

import (
	"context"
	"event-registration/common"
	"event-registration/common/otel"
	"fmt"
	"github.com/spf13/viper"
	"mime"
	"net/smtp"
	"strings"
	"time"
)

type EmailOutbound struct {
	Cfg     *viper.Viper
	TimeNow func() time.Time

	auth     smtp.Auth
	addr     string
	from     string
	fromName string
	send     func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func (out *EmailOutbound) Init() {
	out.from = out.Cfg.GetString("email.user")
	out.fromName = out.Cfg.GetString("email.from_name")
	out.addr = fmt.Sprintf("%s:%d", out.Cfg.GetString("email.host"), out.Cfg.GetInt("email.port"))
	out.auth = smtp.CRAMMD5Auth(out.Cfg.GetString("email.user"), out.Cfg.GetString("email.password"))
	out.send = smtp.SendMail

	if out.TimeNow == nil {
		out.TimeNow = time.Now
	}
}

func (out *EmailOutbound) Send(ctx context.Context, to []string, subject string, body string) error {
	_, span := otel.Tracer.Start(ctx, "EmailOutbound.Send")
	defer span.End()

	err := out.send(out.addr, out.auth, out.from, to, out.buildMessage(to, subject, body))
	if err != nil {
		common.UtilSpanError(span, err)
		return err
	}

	return nil
}

func (out *EmailOutbound) buildMessage(to []string, subject string, body string) []byte {
	from := out.from
	if out.fromName != "" {
		from = fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", out.fromName), out.from)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(to, ","))
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	fmt.Fprintf(&b, "Date: %s\r\n", out.TimeNow().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)

	return []byte(b.String())
}
