package automaton

// Machine feeds symbols through the transition table and owns the buffers
// they mutate. A Machine parses one document and is not safe for concurrent
// use; build one per document.
type Machine struct {
	state     State
	buf       *Buffers
	quoteLine int // line the open quoted field started on
	endLine   int // position of the last synthetic line terminator
	endCol    int
	err       error
}

// NewMachine returns a machine in the FieldStart state at line 1.
func NewMachine() *Machine {
	return &Machine{
		state: FieldStart,
		buf:   NewBuffers(),
	}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Buffers exposes the accumulation buffers for inspection.
func (m *Machine) Buffers() *Buffers {
	return m.buf
}

// Step consumes one rune of the current line. A '\n' ends the line exactly
// as EndLine does, so positions stay right when a line carries its own breaks.
func (m *Machine) Step(r rune) error {
	if r == '\n' {
		return m.EndLine()
	}
	m.buf.Column++
	return m.feed(r)
}

// EndLine feeds the synthetic line terminator and moves to the next line.
func (m *Machine) EndLine() error {
	m.buf.Column++
	m.endLine, m.endCol = m.buf.Line, m.buf.Column
	if err := m.feed('\n'); err != nil {
		return err
	}
	m.buf.Line++
	m.buf.Column = 0
	return nil
}

func (m *Machine) feed(r rune) error {
	if m.err != nil {
		return m.err
	}

	class := Classify(r)
	if class != Newline {
		m.buf.touch()
	}

	next, action := Next(m.state, class)
	if next == InQuotedField && m.state != InQuotedField && m.state != QuoteSeenInQuotedField {
		m.quoteLine = m.buf.Line
	}
	m.state = next

	if err := m.buf.Execute(action, r); err != nil {
		return m.fail(err)
	}
	return nil
}

func (m *Machine) fail(err error) error {
	m.state = Error
	m.err = err
	return err
}

// Finish flushes the pending row and returns the table. It fails if the input
// ended inside a quoted field. Once a Machine has failed, every call returns
// the same error.
func (m *Machine) Finish() ([][]string, error) {
	if m.err != nil {
		return nil, m.err
	}

	if m.state == InQuotedField {
		line, col := m.buf.Line, m.buf.Column+1
		if m.buf.Column == 0 && m.endLine > 0 {
			line, col = m.endLine, m.endCol
		}
		return nil, m.fail(&ParseError{
			StartLine: m.quoteLine,
			Line:      line,
			Column:    col,
			Err:       ErrUnterminatedQuote,
		})
	}

	if err := m.buf.Execute(CommitRow, '\n'); err != nil {
		return nil, m.fail(err)
	}
	m.state = FieldStart
	return m.buf.Rows(), nil
}

// Parse runs a fresh Machine over lines, feeding a line terminator after each
// one, and returns the rows. No partial table is returned on error.
func Parse(lines []string) ([][]string, error) {
	m := NewMachine()
	for _, line := range lines {
		for _, r := range line {
			if err := m.Step(r); err != nil {
				return nil, err
			}
		}
		if err := m.EndLine(); err != nil {
			return nil, err
		}
	}
	return m.Finish()
}
