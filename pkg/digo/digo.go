// Package digo implements the canonical digital object model used for OCR
// evaluation, together with the parsers that build it from ALTO XML,
// PAGE XML and plain text.
//
// The package provides:
//
// - A format independent tree: DigitalObject → Regions → TextLines → Words
// - Content sniffing to tell ALTO, PAGE and plain text apart
// - An ALTO parser reading TextBlock/TextLine/String elements
// - A PAGE parser reading TextRegion/TextLine/Word elements, honouring the
//   declared reading order
// - Region lookups by identifier and by area
//
// Main Functions:
//
// - Load: reads a file and parses it into a DigitalObject
// - Parse: parses raw bytes into a DigitalObject
// - Detect: determines the format of raw content
package digo

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrRead reports an input file that could not be read
	ErrRead = errors.New("read failed")
	// ErrFormat reports content matching none of the supported formats
	ErrFormat = errors.New("unsupported format")
	// ErrParse reports malformed XML or a malformed coordinate string
	ErrParse = errors.New("parse failed")
	// ErrNoRegions reports a geometric query on a document without boxed regions
	ErrNoRegions = errors.New("no regions with bounding box")
)

// Load reads the file at path and parses it into a DigitalObject.
func Load(path string) (*DigitalObject, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Path = path
	return doc, nil
}

// Parse converts raw file content into a DigitalObject.
// The format is detected once from the content and never changes.
func Parse(data []byte) (*DigitalObject, error) {
	format := Detect(data)
	switch format {
	case Alto:
		root, err := parseXML(data)
		if err != nil {
			return nil, err
		}
		return parseAlto(root)
	case Page:
		root, err := parseXML(data)
		if err != nil {
			return nil, err
		}
		return parsePage(root)
	case Text:
		return parseText(data), nil
	}
	return nil, fmt.Errorf("%w: content is neither ALTO, PAGE nor plain text", ErrFormat)
}
