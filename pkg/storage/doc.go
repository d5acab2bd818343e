// Package storage provides the output sinks for generated templates.
//
// The Storage interface is deliberately small: the build and convert steps
// only need to write a document at a relative path and to check whether a
// path is already taken. Two implementations are provided:
//   - LocalStorage: writes below a base directory, creating parent
//     directories on demand and rejecting paths that escape the root
//   - S3Storage: uploads to an AWS S3 (or S3-compatible) bucket under an
//     optional key prefix
//
// # Usage
//
//	out, err := storage.NewLocalStorage("templates")
//	if err != nil {
//		return err
//	}
//	err = out.Write(ctx, "orders/order-confirmation.html", html)
//
// Publishing to a bucket:
//
//	out, err := storage.NewS3Storage(ctx, storage.S3Config{
//		Bucket: "email-templates",
//		Region: "eu-central-1",
//		Prefix: "v2",
//	})
//
// # Errors
//
// Path validation failures wrap ErrInvalidPath. S3 failures are classified
// into ErrBucketNotFound, ErrAccessDenied, ErrRequestTimeout,
// ErrServiceUnavailable, ErrOperationTimeout and ErrOperationCanceled where
// the cause is recognizable.
package storage
