package encode

type EncodeOption func(*EncState)

func Compact(v bool) EncodeOption {
	return func(es *EncState) { es.compact = v }
}

func Indent(s string) EncodeOption {
	return func(es *EncState) { es.indent = s }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}
