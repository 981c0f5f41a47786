package textindex

import (
	"bufio"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/ordmap"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax29"
	"golang.org/x/net/html"
)

// Span is a byte-range descriptor inside the indexed text.
//
// Pos is the start byte offset, Len is the span length in bytes.
type Span struct {
	Pos uint64
	Len uint64
}

// Words reads text and returns an index of the words in it, mapping each
// case-folded word to the byte spans of its occurrences, in text order.
//
// Word boundaries follow Unicode Annex #29. Segments without a letter or
// digit (whitespace, punctuation runs) are not indexed.
func Words(input io.Reader) (ordmap.Map[string, []Span], error) {
	segmenter := segment.NewSegmenter(uax29.NewWordBreaker(1))
	segmenter.Init(bufio.NewReader(input))
	var index ordmap.Map[string, []Span]
	pos := uint64(0)
	words := 0
	for segmenter.Next() {
		frag := segmenter.Bytes()
		length := uint64(len(frag))
		if isWord(frag) {
			key := strings.ToLower(string(frag))
			spans, _ := index.Lookup(key)
			index = index.Set(key, append(spans, Span{Pos: pos, Len: length}))
			words++
		}
		pos += length
	}
	if err := segmenter.Err(); err != nil {
		return ordmap.Map[string, []Span]{}, err
	}
	tracer().Debugf("word index: %d words, %d distinct", words, index.Len())
	return index, nil
}

// Frequencies reads text and returns an index mapping each case-folded word
// to the number of its occurrences.
func Frequencies(input io.Reader) (ordmap.Map[string, int], error) {
	index, err := Words(input)
	if err != nil {
		return ordmap.Map[string, int]{}, err
	}
	return ordmap.MapValues(index, func(spans []Span) int {
		return len(spans)
	}), nil
}

// WordsFromHTML extracts the textual content of an HTML fragment and indexes
// it like Words. Returned spans address the extracted text, with the text
// nodes concatenated in document order; script and style elements are
// skipped.
func WordsFromHTML(input io.Reader) (ordmap.Map[string, []Span], error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return ordmap.Map[string, []Span]{}, err
	}
	var text strings.Builder
	for _, n := range nodes {
		collectText(n, &text)
	}
	return Words(strings.NewReader(text.String()))
}

func collectText(n *html.Node, out *strings.Builder) {
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	}
	if n.Type == html.TextNode {
		out.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, out)
	}
}

// isWord reports whether a segment contains at least one letter or digit.
func isWord(frag []byte) bool {
	for pos := 0; pos < len(frag); {
		r, width := utf8.DecodeRune(frag[pos:])
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
		pos += width
	}
	return false
}
