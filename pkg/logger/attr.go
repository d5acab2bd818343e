package logger

import (
	"log/slog"
	"strconv"
	"strings"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Template records the relative path of the template being processed.
func Template(path string) slog.Attr {
	return slog.String("template", path)
}

// Partial records the name of a partial document.
func Partial(name string) slog.Attr {
	return slog.String("partial", name)
}

// Path records a file system or object storage path.
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Count records a number of processed documents.
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// RunID records the identifier of the current pipeline run under "run_id".
// If id is empty, it returns an empty Attr.
func RunID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("run_id", id)
}

// Component names the pipeline stage emitting the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Duration records elapsed time.
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Recipient records an email address with all but the first character of
// the local part masked, e.g. "t***@example.com".
func Recipient(addr string) slog.Attr {
	addr = strings.TrimSpace(addr)
	local, domain, ok := strings.Cut(addr, "@")
	switch {
	case !ok || local == "":
		return slog.String("recipient", addr)
	case len(local) == 1:
		return slog.String("recipient", "*@"+domain)
	default:
		return slog.String("recipient", local[:1]+strings.Repeat("*", len(local)-1)+"@"+domain)
	}
}
