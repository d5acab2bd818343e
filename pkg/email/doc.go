// Package email sends rendered template previews to an inbox.
//
// Every transport implements EmailSender and validates SendEmailParams
// before doing anything else. Three transports are available:
//   - SMTP (NewSMTPClient): an authenticated SMTP sandbox such as Mailtrap,
//     the default for previews
//   - Postmark (NewPostmarkClient): real delivery through Postmark
//   - Dev (NewDevSender): writes each preview to disk as HTML plus JSON
//     metadata
//
// NewSender picks one from Config.Transport, which is read from the
// PREVIEW_TRANSPORT environment variable.
//
// # Usage
//
//	var cfg email.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
//	sender, err := email.NewSender(cfg)
//	if errors.Is(err, email.ErrMissingCredentials) {
//		// MAILTRAP_USER / MAILTRAP_PASS are not set
//	}
//
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//		SendTo:   cfg.SendTo,
//		Subject:  "Order Confirmation",
//		BodyHTML: html,
//		Tag:      "order-confirmation",
//	})
//
// # Errors
//
//   - ErrMissingCredentials: sandbox user or password not configured
//   - ErrInvalidConfig: any other configuration problem
//   - ErrInvalidParams: SendEmailParams failed validation
//   - ErrFailedToSendEmail: the transport rejected or failed the send; the
//     underlying cause is joined to it
//   - ErrUnknownTransport: Config.Transport names no transport
package email
