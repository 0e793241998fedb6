package calc

// Expr is a single parsed input line: Left Op Right.
type Expr struct {
	Left  float64
	Op    string
	Right float64
}

// Parse turns a line into an Expr. The line must hold exactly three tokens;
// the first and last must be numbers. The operator is not checked here.
func Parse(line string) (Expr, error) {
	toks := Lex(line)
	if toks.Len() != 3 {
		return Expr{}, ErrMalformedInput(toks.Len())
	}

	left, lerr := toks.Index(0).AsFloat()
	right, rerr := toks.Index(2).AsFloat()
	switch {
	case lerr != nil && rerr != nil:
		return Expr{}, ErrInvalidNumber(toks.Index(0).String, toks.Index(2).String)
	case lerr != nil:
		return Expr{}, ErrInvalidNumber(toks.Index(0).String)
	case rerr != nil:
		return Expr{}, ErrInvalidNumber(toks.Index(2).String)
	}

	return Expr{Left: left, Op: toks.Index(1).String, Right: right}, nil
}

func (e Expr) Eval() (float64, error) {
	return Evaluate(e.Left, e.Op, e.Right)
}

func (e Expr) String() string {
	return List{NewTokenFloat(e.Left), NewTokenString(e.Op), NewTokenFloat(e.Right)}.String()
}
