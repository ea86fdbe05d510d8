package syntax

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/you-not-fish/pyc/internal/types"
)

// FprintJSON writes a JSON representation of t to w.
// Each child slot is rendered as the list of nodes chained from it.
func FprintJSON(w io.Writer, t *Tree) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(t, t.Root))
}

func toJSON(t *Tree, id NodeID) map[string]interface{} {
	a := t.Attr(id)
	m := map[string]interface{}{
		"id":   id,
		"kind": t.Kind(id).String(),
		"node": strings.TrimPrefix(fmt.Sprintf("%T", a), "*syntax."),
		"pos":  t.Pos(id).String(),
	}
	if typ := t.Type(id); !types.IsUndefined(typ) {
		m["type"] = typ.String()
	}

	switch a := a.(type) {
	case *VarDecl:
		m["name"] = a.Name
		m["declType"] = a.Type.String()
	case *ArrayDecl:
		m["name"] = a.Name
		m["declType"] = a.Elem.String()
		m["size"] = a.Size
	case *FuncDecl:
		m["name"] = a.Name
		m["result"] = a.Result.String()
		if a.Def {
			m["def"] = true
		}
	case *VarParam:
		m["name"] = a.Name
		m["declType"] = a.Type.String()
	case *ArrayParam:
		m["name"] = a.Name
		m["declType"] = a.Elem.String()
	case *BinaryExpr:
		m["op"] = a.Op.String()
	case *ConstExpr:
		m["lit"] = a.Lit.String()
		m["value"] = a.Value
	case *IdentExpr:
		m["name"] = a.Name
	case *IndexExpr:
		m["name"] = a.Name
	case *CallExpr:
		m["name"] = a.Name
	}

	var children []interface{}
	last := -1
	for i := 0; i < MaxChildren; i++ {
		head := t.Child(id, i)
		if head != NoNode {
			last = i
		}
		var list []interface{}
		for _, c := range t.List(head) {
			list = append(list, toJSON(t, c))
		}
		children = append(children, list)
	}
	if last >= 0 {
		m["children"] = children[:last+1]
	}
	return m
}
