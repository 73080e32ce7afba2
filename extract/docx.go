package extract

import (
	"encoding/xml"
	"io"
)

// wordParagraphs walks WordprocessingML and collects the text runs (<w:t>)
// of each paragraph (<w:p>) in document order.
func wordParagraphs(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var (
		paragraphs []string
		current    []byte
		inText     bool
		sawPara    bool
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "p":
				sawPara = true
			case "t":
				inText = true
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "p":
				paragraphs = append(paragraphs, string(current))
				current = current[:0]
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				current = append(current, el...)
			}
		}
	}

	// Text outside any paragraph still counts once.
	if !sawPara && len(current) > 0 {
		paragraphs = append(paragraphs, string(current))
	}

	return paragraphs, nil
}
