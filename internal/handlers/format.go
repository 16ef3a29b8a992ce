package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/amaumene/nyaainfo/internal/errors"
	"github.com/amaumene/nyaainfo/internal/models"
)

const summaryTemplate = "Torrent #%s '%s' uploaded by '%s' (%s) (Created on: %s) (%s - %s) (Trusted: %s, Complete: %s, Remake: %s)\n%s"

var summaryFields = []string{
	models.FieldID,
	models.FieldName,
	models.FieldSubmitter,
	models.FieldFilesize,
	models.FieldCreationDate,
	models.FieldMainCategory,
	models.FieldSubCategory,
	models.FieldIsTrusted,
	models.FieldIsComplete,
	models.FieldIsRemake,
	models.FieldMagnet,
}

// ParseDocument decodes body as a single JSON object. Numbers are kept as
// json.Number so they print as sent.
func ParseDocument(body []byte) (models.Document, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc models.Document
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.NewResponseParseError(string(body), err)
	}
	if doc == nil {
		return nil, errors.NewResponseParseError(string(body), fmt.Errorf("response is not a JSON object"))
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, errors.NewResponseParseError(string(body), fmt.Errorf("trailing data after JSON object"))
	}

	return doc, nil
}

// FormatSummary renders the one-line summary and the magnet link. A truthy
// errors field wins over everything else.
func FormatSummary(doc models.Document, body string) (string, error) {
	if apiErrors := doc[models.FieldErrors]; isTruthy(apiErrors) {
		return "", errors.NewAPIError(displayValue(apiErrors))
	}

	for _, field := range summaryFields {
		if _, ok := doc[field]; !ok {
			return "", errors.NewResponseParseError(body, fmt.Errorf("missing field %q", field))
		}
	}

	size, ok := doc[models.FieldFilesize].(json.Number)
	if !ok {
		return "", errors.NewResponseParseError(body, fmt.Errorf("filesize is not a number"))
	}
	bytesCount, err := size.Float64()
	if err != nil {
		return "", errors.NewResponseParseError(body, fmt.Errorf("invalid filesize: %w", err))
	}

	return fmt.Sprintf(summaryTemplate,
		displayValue(doc[models.FieldID]),
		displayValue(doc[models.FieldName]),
		displayValue(doc[models.FieldSubmitter]),
		EasyFileSize(bytesCount),
		displayValue(doc[models.FieldCreationDate]),
		displayValue(doc[models.FieldMainCategory]),
		displayValue(doc[models.FieldSubCategory]),
		yesNo(doc[models.FieldIsTrusted]),
		yesNo(doc[models.FieldIsComplete]),
		yesNo(doc[models.FieldIsRemake]),
		displayValue(doc[models.FieldMagnet]),
	), nil
}

func yesNo(v interface{}) string {
	if isTruthy(v) {
		return "Yes"
	}
	return "No"
}

// isTruthy treats null, false, zero, and empty strings, lists and objects as false.
func isTruthy(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case json.Number:
		f, err := val.Float64()
		return err != nil || f != 0
	case float64:
		return val != 0
	case []interface{}:
		return len(val) > 0
	case map[string]interface{}:
		return len(val) > 0
	}
	return true
}

// displayValue prints a decoded JSON value: strings bare, lists and
// objects in the bracketed form users of the API are used to.
func displayValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "None"
	case bool:
		if val {
			return "True"
		}
		return "False"
	case string:
		return val
	case json.Number:
		return val.String()
	case []interface{}:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = quotedValue(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = quotedValue(k) + ": " + quotedValue(val[k])
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return fmt.Sprint(v)
}

func quotedValue(v interface{}) string {
	s, ok := v.(string)
	if !ok {
		return displayValue(v)
	}
	s = escapeString(s)
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}

// escapeString escapes backslashes and control characters inside a quoted value.
func escapeString(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\r':
			b.WriteString(`\r`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
