// Package scanner produces trimmed line views over a byte slice without
// copying, in sequential and random-access (indexed) flavours.
package scanner

// trimCutset is the ASCII whitespace set line trimming strips: space,
// tab, CR, LF.
const trimCutset = " \t\r\n"

func isTrimByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// trim returns the sub-slice of line with leading/trailing ASCII whitespace
// removed. It never copies.
func trim(line []byte) []byte {
	start := 0
	for start < len(line) && isTrimByte(line[start]) {
		start++
	}
	end := len(line)
	for end > start && isTrimByte(line[end-1]) {
		end--
	}
	return line[start:end]
}

// Sequential walks buf line by line with a cursor, never looking back.
type Sequential struct {
	buf []byte
	pos int
}

// NewSequential wraps buf for forward-only line iteration.
func NewSequential(buf []byte) *Sequential {
	return &Sequential{buf: buf}
}

// Next returns the next trimmed line and true, or (nil, false) at EOF. A
// line ends at '\n' or EOF.
func (s *Sequential) Next() ([]byte, bool) {
	if s.pos >= len(s.buf) {
		return nil, false
	}
	end := indexByte(s.buf, s.pos, '\n')
	if end < 0 {
		end = len(s.buf)
	}
	line := s.buf[s.pos:end]
	s.pos = end + 1
	return trim(line), true
}

func indexByte(buf []byte, from int, b byte) int {
	for i := from; i < len(buf); i++ {
		if buf[i] == b {
			return i
		}
	}
	return -1
}

// Indexed precomputes every line's start offset so any line is accessible
// in O(1), enabling block assignment by line index for parallel parsing.
type Indexed struct {
	buf     []byte
	offsets []int // offsets[i] is the start of line i; len(offsets) == line count + 1, last entry is len(buf)
}

// NewIndexed builds the line-start index over buf.
func NewIndexed(buf []byte) *Indexed {
	offsets := []int{0}
	for i, b := range buf {
		if b == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	if offsets[len(offsets)-1] != len(buf) {
		offsets = append(offsets, len(buf))
	}
	return &Indexed{buf: buf, offsets: offsets}
}

// Len returns the number of lines.
func (idx *Indexed) Len() int {
	if len(idx.offsets) == 0 {
		return 0
	}
	return len(idx.offsets) - 1
}

// Line returns the trimmed i-th line. It panics if i is out of range.
func (idx *Indexed) Line(i int) []byte {
	start := idx.offsets[i]
	end := idx.offsets[i+1]
	// strip the trailing '\n' that delimited this line, if present.
	if end > start && idx.buf[end-1] == '\n' {
		end--
	}
	return trim(idx.buf[start:end])
}

// BoundedIndexed walks a contiguous line-index range of an Indexed scanner,
// implementing the same Next() contract as Sequential so parsers can treat
// a partition block like any other line source.
type BoundedIndexed struct {
	idx      *Indexed
	pos, end int
}

// Bounded returns an iterator over lines [start, end) of idx.
func (idx *Indexed) Bounded(start, end int) *BoundedIndexed {
	return &BoundedIndexed{idx: idx, pos: start, end: end}
}

// Next returns the next trimmed line in the bound range and true, or
// (nil, false) once the range is exhausted.
func (b *BoundedIndexed) Next() ([]byte, bool) {
	if b.pos >= b.end {
		return nil, false
	}
	line := b.idx.Line(b.pos)
	b.pos++
	return line, true
}

// Pos returns the current (not-yet-consumed) line index.
func (b *BoundedIndexed) Pos() int { return b.pos }

// BlockRange splits the line range [0, Len()) into numBlocks contiguous,
// roughly equal blocks and returns the [start, end) line-index range for
// block.
func (idx *Indexed) BlockRange(block, numBlocks int) (start, end int) {
	total := idx.Len()
	linesPerBlock := total / numBlocks
	start = block * linesPerBlock
	if block == numBlocks-1 {
		end = total
	} else {
		end = (block + 1) * linesPerBlock
	}
	return start, end
}
