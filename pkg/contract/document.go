package contract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrUnsupportedFormat is returned for contract files that are not PDF, DOCX or plain text.
var ErrUnsupportedFormat = errors.New("unsupported contract format")

// Load reads the contract at path and extracts its candidate values.
func Load(path string) (Document, error) {
	text, err := ReadText(path)
	if err != nil {
		return Document{}, err
	}
	return Extract(text), nil
}

// ReadText returns the plain text of a .pdf, .docx, .txt or .md file.
// It either returns the whole text or an error, never a partial result.
func ReadText(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf", ".docx", ".txt", ".md":
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read contract: %w", err)
	}

	var text string
	switch ext {
	case ".pdf":
		text, err = readPDF(bytes.NewReader(data), int64(len(data)))
	case ".docx":
		text, err = readDOCX(bytes.NewReader(data), int64(len(data)))
	default:
		text = string(data)
	}
	if err != nil {
		return "", fmt.Errorf("failed to extract text from %s: %w", filepath.Base(path), err)
	}
	return text, nil
}

// readPDF concatenates the plain text of every page, one line break after each.
func readPDF(ra io.ReaderAt, size int64) (text string, err error) {
	// The PDF reader panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(ra, size)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		s, err := p.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		if s != "" {
			sb.WriteString(s)
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}

const wordNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// readDOCX returns the text of every paragraph in word/document.xml, one per line.
func readDOCX(ra io.ReaderAt, size int64) (string, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return "", fmt.Errorf("invalid docx archive: %w", err)
	}
	var body *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			body = f
			break
		}
	}
	if body == nil {
		return "", errors.New("invalid docx archive: word/document.xml not found")
	}
	rc, err := body.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	var (
		sb     strings.Builder
		para   strings.Builder
		inText bool
	)
	dec := xml.NewDecoder(rc)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("invalid document.xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space != wordNS {
				continue
			}
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				para.WriteString("\t")
			case "br", "cr":
				para.WriteString("\n")
			}
		case xml.EndElement:
			if t.Name.Space != wordNS {
				continue
			}
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString(para.String())
				sb.WriteString("\n")
				para.Reset()
			}
		case xml.CharData:
			if inText {
				para.Write(t)
			}
		}
	}
	return sb.String(), nil
}
