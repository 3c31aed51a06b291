package buffer

import "strings"

const (
	embedPrefix = "![image]("
	embedSuffix = ')'
)

// EmbedMarkup returns the document markup for an inline image whose source is
// data (typically a data URI).
func EmbedMarkup(data string) string {
	return embedPrefix + data + string(embedSuffix)
}

// IsEmbed reports whether cluster is an embed produced by EmbedMarkup.
func IsEmbed(cluster string) bool {
	_, ok := EmbedData(cluster)
	return ok
}

// EmbedData returns the source of an embed cluster.
func EmbedData(cluster string) (string, bool) {
	if !strings.HasPrefix(cluster, embedPrefix) || !strings.HasSuffix(cluster, string(embedSuffix)) {
		return "", false
	}
	data := cluster[len(embedPrefix) : len(cluster)-1]
	if data == "" || strings.ContainsAny(data, ")\n") {
		return "", false
	}
	return data, true
}

// InsertEmbed inserts an image embed at the document offset off. Offsets past
// the end of the document insert at the end.
//
// A cursor at or after the insertion point on the same line shifts right by
// one cluster; the selection is cleared.
func (b *Buffer) InsertEmbed(off int, data string) bool {
	if data == "" || strings.ContainsAny(data, ")\n") {
		return false
	}
	if off < 0 {
		return false
	}

	p, ok := b.PosFromOffset(min(off, b.DocLen()))
	if !ok {
		return false
	}

	cursor := b.cursor
	b.spliceClusters(Range{Start: p, End: p}, [][]string{{EmbedMarkup(data)}})
	if cursor.Row == p.Row && cursor.GraphemeCol >= p.GraphemeCol {
		cursor.GraphemeCol++
	}
	b.cursor = cursor
	b.sel = selectionState{}
	b.version++
	b.textVersion++
	return true
}
