package subtitle

import "errors"

var (
	// ErrUnsupportedFormat means no parser or serializer exists for the
	// requested file extension.
	ErrUnsupportedFormat = errors.New("unsupported subtitle format")

	// ErrUnimplementedFormat marks serializers that are declared but
	// deliberately not implemented (LRC, WebVTT output).
	ErrUnimplementedFormat = errors.New("subtitle format not implemented")

	// ErrInvalidRange is returned by the merge operations for out-of-bounds
	// or inverted index ranges.
	ErrInvalidRange = errors.New("invalid segment range")

	// ErrDecode means the content is neither valid UTF-8 nor decodable with
	// the GBK fallback.
	ErrDecode = errors.New("unable to decode subtitle content")
)
