package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrUnsupportedFileType is returned when neither the MIME type nor the file
// extension identifies a supported format.
var ErrUnsupportedFileType = errors.New("unsupported file type")

const (
	mimePDF  = "application/pdf"
	mimeText = "text/plain"
)

var crlf = regexp.MustCompile(`\r\n?`)

// ExtractTextFromBytes extracts plain text from an uploaded filing payload.
// Supported inputs are PDF (github.com/ledongthuc/pdf) and plain text;
// filings are expected to arrive already stripped of HTML.
func ExtractTextFromBytes(data []byte, mimeType string, fileName string) (string, error) {
	switch normalizeMimeType(mimeType, fileName) {
	case mimePDF:
		return extractPDF(data)
	case mimeText:
		return normalizeText(string(data)), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, mimeType)
	}
}

func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("copy pdf text: %w", err)
	}
	return normalizeText(buf.String()), nil
}

// normalizeText unifies line endings and trims trailing whitespace per line
// so downstream segmentation sees a consistent blob.
func normalizeText(raw string) string {
	text := crlf.ReplaceAllString(raw, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func normalizeMimeType(mimeType string, fileName string) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	switch clean {
	case mimePDF, mimeText:
		return clean
	case "":
		// fall through to extension sniffing
	default:
		return clean
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return mimePDF
	case ".txt", ".text":
		return mimeText
	default:
		return clean
	}
}
