package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups non-nil errors under "errors"; all-nil input yields an empty Attr.
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

// Error records err under "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component records the emitting package or subsystem.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Kind records the payload kind being encoded.
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// OutputFormat records the requested output format.
func OutputFormat(format string) slog.Attr {
	return slog.String("format", format)
}

// LinkCode records a tracked short-link code.
func LinkCode(code string) slog.Attr {
	return slog.String("link_code", code)
}

// ErrorCode records the stable external error code of a failed request.
func ErrorCode(code string) slog.Attr {
	return slog.String("error_code", code)
}

// Duration records an elapsed time under "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// ClientIP records the resolved client address.
func ClientIP(ip string) slog.Attr {
	if ip == "" {
		return slog.Attr{}
	}
	return slog.String("client_ip", ip)
}
