package extract

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

type pdfExtractor struct{}

func (pdfExtractor) Extract(contents []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(contents), int64(len(contents)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	return buf.String(), nil
}
