package lexer

// escapes maps the character after a backslash to the byte it denotes.
var escapes = map[byte]byte{
	'0':  0x00,
	't':  0x09,
	'n':  0x0A,
	'r':  0x0D,
	'e':  0x1B,
	'\'': 0x27,
	'"':  0x22,
	'\\': 0x5C,
}

// unescape decodes the body of a quoted literal (without the quotes) into raw
// bytes. Unknown escapes decode to 0 and are passed to bad with their offset
// inside body.
func unescape(body string, bad func(offset int, name byte)) []byte {
	out := make([]byte, 0, len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 >= len(body) {
			out = append(out, c)
			continue
		}
		i++
		b, ok := escapes[body[i]]
		if !ok {
			if bad != nil {
				bad(i-1, body[i])
			}
			b = 0
		}
		out = append(out, b)
	}
	return out
}
