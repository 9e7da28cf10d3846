// Copyright (c) 2026 The bddkit Authors
//
// MIT License

package robdd

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Encode writes d to w in its canonical binary layout: a little
// endian u16 variable count, a little endian u32 node count, then that many
// fixed-size records (u16 variable, u32 low, u32 high) in the same
// postorder the node array is already stored in. The terminal prefix is
// included, so Decode can reconstruct d without any extra bookkeeping.
func (d Diagram) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	var header [6]byte
	binary.LittleEndian.PutUint16(header[0:2], uint16(d.numVars))
	binary.LittleEndian.PutUint32(header[2:6], uint32(len(d.nodes)))
	if _, err := bw.Write(header[:]); err != nil {
		return logerr(err)
	}
	var rec [10]byte
	for _, n := range d.nodes {
		binary.LittleEndian.PutUint16(rec[0:2], uint16(n.Var))
		binary.LittleEndian.PutUint32(rec[2:6], uint32(n.Low))
		binary.LittleEndian.PutUint32(rec[6:10], uint32(n.High))
		if _, err := bw.Write(rec[:]); err != nil {
			return logerr(err)
		}
	}
	return logerr(bw.Flush())
}

// Decode reads a Diagram from r in the layout written by Encode. It fails
// with ErrMalformedInput if the stream ends before the number of records its
// header announces or the records do not form a well-formed node array, and
// with ErrNodeOverflow if the header claims more nodes than a Pointer can
// address. Data after the last announced record is not examined.
func Decode(r io.Reader) (Diagram, error) {
	br := bufio.NewReader(r)
	var header [6]byte
	if _, err := io.ReadFull(br, header[:]); err != nil {
		return Diagram{}, logerr(fmt.Errorf("%w: reading header: %v", ErrMalformedInput, err))
	}
	numVars := binary.LittleEndian.Uint16(header[0:2])
	count := binary.LittleEndian.Uint32(header[2:6])
	if uint64(count) >= 1<<32-1 {
		return Diagram{}, logerr(fmt.Errorf("%w: %d nodes", ErrNodeOverflow, count))
	}
	if count < 1 {
		return Diagram{}, logerr(fmt.Errorf("%w: node count %d smaller than the terminal prefix", ErrMalformedInput, count))
	}
	nodes := make([]node, count)
	var rec [10]byte
	for i := range nodes {
		if _, err := io.ReadFull(br, rec[:]); err != nil {
			return Diagram{}, logerr(fmt.Errorf("%w: reading record %d: %v", ErrMalformedInput, i, err))
		}
		nodes[i] = node{
			Var:  Variable(binary.LittleEndian.Uint16(rec[0:2])),
			Low:  Pointer(binary.LittleEndian.Uint32(rec[2:6])),
			High: Pointer(binary.LittleEndian.Uint32(rec[6:10])),
		}
	}
	d := Diagram{nodes: nodes, numVars: Variable(numVars)}
	if err := d.validate(); err != nil {
		return Diagram{}, logerr(err)
	}
	return d, nil
}

// validate checks the structural invariants a decoded node array must
// satisfy before it can be trusted as a Diagram: the terminal prefix is
// intact, every internal node tests a real variable, points strictly
// backwards, and is not a redundant test. It does not re-check uniqueness
// or postorder, which canonicity guarantees for anything Encode wrote and
// which no read-only algorithm in this package depends on for memory
// safety.
func (d Diagram) validate() error {
	if len(d.nodes) == 0 {
		return fmt.Errorf("%w: empty node array", ErrMalformedInput)
	}
	if d.nodes[0] != (node{Var: d.numVars, Low: PtrFalse, High: PtrFalse}) {
		return fmt.Errorf("%w: record 0 is not the False terminal", ErrMalformedInput)
	}
	if len(d.nodes) > 1 && d.nodes[1] != (node{Var: d.numVars, Low: PtrTrue, High: PtrTrue}) {
		return fmt.Errorf("%w: record 1 is not the True terminal", ErrMalformedInput)
	}
	for i := 2; i < len(d.nodes); i++ {
		n := d.nodes[i]
		if n.Var >= d.numVars {
			return fmt.Errorf("%w: record %d tests variable %d, numVars %d", ErrMalformedInput, i, n.Var, d.numVars)
		}
		if int(n.Low) >= i || int(n.High) >= i {
			return fmt.Errorf("%w: record %d points forward (low %d, high %d)", ErrMalformedInput, i, n.Low, n.High)
		}
		if n.Low == n.High {
			return fmt.Errorf("%w: record %d is a redundant test", ErrMalformedInput, i)
		}
		if lv := d.varOrSentinel(n.Low); lv <= n.Var {
			return fmt.Errorf("%w: record %d breaks the variable order toward its low child", ErrMalformedInput, i)
		}
		if hv := d.varOrSentinel(n.High); hv <= n.Var {
			return fmt.Errorf("%w: record %d breaks the variable order toward its high child", ErrMalformedInput, i)
		}
	}
	return nil
}

// ************************************************************

// EncodeText writes d to w in its textual layout: one node
// record "v|lo|hi" per line, in the same order Encode uses. There is no
// header; DecodeText recovers the variable count from the terminal
// sentinel of the first record, and the node count from the number of
// records. It is meant for inspection and small fixtures rather than
// performance.
func (d Diagram) EncodeText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, n := range d.nodes {
		if _, err := fmt.Fprintf(bw, "%d|%d|%d\n", n.Var, n.Low, n.High); err != nil {
			return logerr(err)
		}
	}
	return logerr(bw.Flush())
}

// DecodeText reads a Diagram from r in the layout written by EncodeText,
// accepting records separated by any mix of whitespace and newlines. It
// fails with ErrMalformedInput if a record is malformed or the records do
// not form a well-formed node array.
func DecodeText(r io.Reader) (Diagram, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	var nodes []node
	for sc.Scan() {
		fields := strings.Split(sc.Text(), "|")
		if len(fields) != 3 {
			return Diagram{}, logerr(fmt.Errorf("%w: malformed record %q", ErrMalformedInput, sc.Text()))
		}
		v, err1 := strconv.ParseUint(fields[0], 10, 16)
		lo, err2 := strconv.ParseUint(fields[1], 10, 32)
		hi, err3 := strconv.ParseUint(fields[2], 10, 32)
		if err1 != nil || err2 != nil || err3 != nil {
			return Diagram{}, logerr(fmt.Errorf("%w: malformed record %q", ErrMalformedInput, sc.Text()))
		}
		nodes = append(nodes, node{Var: Variable(v), Low: Pointer(lo), High: Pointer(hi)})
	}
	if err := sc.Err(); err != nil {
		return Diagram{}, logerr(fmt.Errorf("%w: %v", ErrMalformedInput, err))
	}
	if len(nodes) == 0 {
		return Diagram{}, logerr(fmt.Errorf("%w: no records", ErrMalformedInput))
	}
	d := Diagram{nodes: nodes, numVars: nodes[0].Var}
	if err := d.validate(); err != nil {
		return Diagram{}, logerr(err)
	}
	return d, nil
}
