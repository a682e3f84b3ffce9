package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path is a parsed accessor chain: a sequence of named-field and index
// steps rooted at '$'.
type Path struct {
	Index *int
	Field *string
	Next  *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	x := p
	for x != nil {
		if x.Field != nil {
			buf.WriteString("." + pathString(*x.Field))
			x = x.Next
			continue
		}
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
			x = x.Next
			continue
		}
		x = x.Next
	}
	return buf.String()
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("path %q should start with '$'", p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	err := parseFrag(p[1:], root)
	if err != nil {
		return nil, err
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	switch frag[0] {
	case '.':
		field, rest, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		if len(rest) == 0 {
			return nil
		}
		next := &Path{}
		err = parseFrag(rest, next)
		if err != nil {
			return err
		}
		parent.Next = next
		return nil
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, err := strconv.Atoi(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.Index = &index
		if len(frag) == i+2 {
			return nil
		}
		next := &Path{}
		err = parseFrag(frag[i+2:], next)
		if err != nil {
			return err
		}
		parent.Next = next
		return nil
	default:
		return fmt.Errorf("expected '.' or '['")
	}
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			escaped = true
		case '\'':
			if !escaped {
				return string(res), frag[i+1:], nil
			}
			fallthrough
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

// GetPath resolves an accessor chain against y, walking left to right.
// A missing field, an out-of-bounds index, or a step applied to a node
// of the wrong type is an ErrPathNotFound.
func (y *Node) GetPath(yPath string) (*Node, error) {
	yp, err := ParsePath(yPath)
	if err != nil {
		return nil, err
	}
	res := y
	for yp != nil {
		if yp.Index != nil {
			if res.Type != ArrayType {
				return nil, fmt.Errorf("%w: %s: expected array, got %s", ErrPathNotFound, yPath, res.Type)
			}
			index := *yp.Index
			if index < 0 || index >= len(res.Values) {
				return nil, fmt.Errorf("%w: %s: index %d out of bounds (len %d)", ErrPathNotFound, yPath, index, len(res.Values))
			}
			res = res.Values[index]
			yp = yp.Next
			continue
		}
		if yp.Field != nil {
			if res.Type != ObjectType {
				return nil, fmt.Errorf("%w: %s: expected object, got %s", ErrPathNotFound, yPath, res.Type)
			}
			field := *yp.Field
			found := false
			for i, yf := range res.Fields {
				if yf.String != field {
					continue
				}
				res = res.Values[i]
				yp = yp.Next
				found = true
				break
			}
			if found {
				continue
			}
			return nil, fmt.Errorf("%w: %s: no field %q", ErrPathNotFound, yPath, field)
		}
		if yp.Next != nil {
			return nil, fmt.Errorf("%w: next without index or field", errInternal)
		}
		break
	}
	return res.Clone(), nil
}

func pathString(f string) string {
	if strings.IndexAny(f, "'.*$[]") == -1 {
		return f
	}
	return "'" + strings.Replace(f, "'", "\\'", -1) + "'"
}
