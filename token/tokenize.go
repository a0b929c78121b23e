package token

// Tokenize appends the tokens of src to dst.  Whitespace separates tokens
// and is otherwise dropped.  Any run of characters that are neither
// whitespace, grouping brackets nor connective scan characters forms a
// single TAtom token, whether or not it is a valid statement letter.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	posDoc := &PosDoc{d: src}
	d := src
	n := len(d)
	i := 0
	for i < n {
		c := d[i]
		switch c {
		case ' ', '\t', '\r':
			i++
			continue
		case '\n':
			return nil, UnexpectedErr("newline", posDoc.Pos(i))
		case '(':
			dst = append(dst, Token{Type: TLParen, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
			i++
			continue
		case ')':
			dst = append(dst, Token{Type: TRParen, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
			i++
			continue
		case '[':
			dst = append(dst, Token{Type: TLSquare, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
			i++
			continue
		case ']':
			dst = append(dst, Token{Type: TRSquare, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
			i++
			continue
		}
		if conn, ok := ScanConnective(c); ok {
			w := conn.Width()
			if i+w > n || string(d[i:i+w]) != conn.Surface() {
				return nil, ExpectedErr(conn.Surface(), posDoc.Pos(i))
			}
			dst = append(dst, Token{Type: connTokenType(conn), Pos: posDoc.Pos(i), Bytes: d[i : i+w]})
			i += w
			continue
		}
		off := atomLen(d[i:])
		dst = append(dst, Token{Type: TAtom, Pos: posDoc.Pos(i), Bytes: d[i : i+off]})
		i += off
	}
	return dst, nil
}

func atomLen(d []byte) int {
	for i, c := range d {
		switch c {
		case ' ', '\t', '\r', '\n', '(', ')', '[', ']':
			return i
		}
		if _, ok := ScanConnective(c); ok {
			return i
		}
	}
	return len(d)
}
