package leetspeak

import "iter"

// Odometer walks the Cartesian product of an Expansion one line at a time,
// rightmost position fastest. It works like bufio.Scanner: call Next, then
// read Text or Bytes. An exhausted Odometer stays exhausted.
type Odometer struct {
	candidates [][]string
	indices    []int
	// offsets[i] is where position i starts in buf.
	offsets    []int
	buf        []byte
	started    bool
	done       bool
}

// Odometer returns a fresh enumerator positioned before the first line.
func (e *Expansion) Odometer() *Odometer {
	candidates := e.Candidates()
	return &Odometer{
		candidates: candidates,
		indices:    make([]int, len(candidates)),
		offsets:    make([]int, len(candidates)),
	}
}

// Next advances to the next combination and reports whether there was one.
func (o *Odometer) Next() bool {
	if o.done {
		return false
	}
	if !o.started {
		o.started = true
		o.fill(0)
		return true
	}

	i := len(o.indices) - 1
	for ; i >= 0; i-- {
		o.indices[i]++
		if o.indices[i] < len(o.candidates[i]) {
			break
		}
		o.indices[i] = 0
	}
	if i < 0 {
		o.done = true
		o.buf = o.buf[:0]
		return false
	}
	o.fill(i)
	return true
}

// fill rebuilds buf from position from onwards; the prefix is unchanged.
func (o *Odometer) fill(from int) {
	if from < len(o.offsets) {
		o.buf = o.buf[:o.offsets[from]]
	}
	for i := from; i < len(o.candidates); i++ {
		o.offsets[i] = len(o.buf)
		o.buf = append(o.buf, o.candidates[i][o.indices[i]]...)
	}
}

// Text returns the current line.
func (o *Odometer) Text() string {
	return string(o.buf)
}

// Bytes returns the current line. The slice is reused by the next call to Next.
func (o *Odometer) Bytes() []byte {
	return o.buf
}

// All returns the lines of e in odometer order. Each range starts a new Odometer.
func (e *Expansion) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		odo := e.Odometer()
		for odo.Next() {
			if !yield(odo.Text()) {
				return
			}
		}
	}
}
