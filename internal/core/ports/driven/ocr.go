package driven

import "context"

// OCREngine extracts text from an in-memory image.
//
// Implementations invoke a local OCR engine; the language set is a
// configurable list of ISO-like codes (e.g. "eng", "jpn", "chi_sim").
type OCREngine interface {
	// Recognize runs OCR over an encoded image and returns the text.
	Recognize(ctx context.Context, image []byte, languages []string) (string, error)

	// Close releases the engine.
	Close() error
}
