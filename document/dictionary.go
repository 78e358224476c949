package document

import (
	"strconv"
	"strings"
)

// Entry is a single dictionary assignment of an index to a hex color.
type Entry struct {
	Index int
	Color string
}

// Dictionary is the ordered assignment of small integer indices to the
// frequent colors of a document. Indices assigned through Add form a dense
// 0-based sequence; parsed dictionaries hold whatever indices the document
// carried.
type Dictionary struct {
	entries []Entry
	byIndex map[int]string
	byColor map[string]int
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{
		byIndex: make(map[int]string),
		byColor: make(map[string]int),
	}
}

// ParseDictionaryLine parses line 1 of a document.
//
// Entries are split on ",", then on "=". An entry that does not split into
// exactly two parts, or whose index does not parse as a non-negative
// integer, is silently skipped. This leniency is deliberate: a damaged
// dictionary entry degrades the affected pixels, it never rejects the
// document.
func ParseDictionaryLine(line string) *Dictionary {
	d := NewDictionary()
	for _, entry := range strings.Split(line, ",") {
		parts := strings.Split(entry, "=")
		if len(parts) != 2 {
			continue
		}
		index, err := strconv.Atoi(parts[0])
		if err != nil || index < 0 {
			continue
		}
		d.put(index, parts[1])
	}

	return d
}

// Add assigns the next dense index to color and returns it.
// Adding a color twice returns the existing index.
func (d *Dictionary) Add(color string) int {
	if index, ok := d.byColor[color]; ok {
		return index
	}
	index := len(d.entries)
	d.put(index, color)

	return index
}

func (d *Dictionary) put(index int, color string) {
	d.entries = append(d.entries, Entry{Index: index, Color: color})
	d.byIndex[index] = color
	if _, ok := d.byColor[color]; !ok {
		d.byColor[color] = index
	}
}

// Color returns the hex color assigned to index.
func (d *Dictionary) Color(index int) (string, bool) {
	color, ok := d.byIndex[index]
	return color, ok
}

// IndexOf returns the index assigned to color, if any.
func (d *Dictionary) IndexOf(color string) (int, bool) {
	index, ok := d.byColor[color]
	return index, ok
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Entries returns the entries in assignment order.
func (d *Dictionary) Entries() []Entry {
	return d.entries
}

// AppendLine appends the dictionary line ("i=HEX" entries joined by commas,
// index order) to dst. An empty dictionary appends nothing, leaving the
// line empty.
func (d *Dictionary) AppendLine(dst []byte) []byte {
	for i, entry := range d.entries {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = strconv.AppendInt(dst, int64(entry.Index), 10)
		dst = append(dst, '=')
		dst = append(dst, entry.Color...)
	}

	return dst
}
