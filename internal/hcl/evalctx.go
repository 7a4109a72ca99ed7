package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/specialistvlad/imgconv/internal/imgformat"
)

// newEvalContext builds the variables and functions available to attribute
// expressions in a configuration file.
func newEvalContext() *hcl.EvalContext {
	formats := make(map[string]cty.Value, len(imgformat.All())+1)
	for _, f := range imgformat.All() {
		formats[f.String()] = cty.StringVal(f.String())
	}
	formats["jpg"] = cty.StringVal(imgformat.JPEG.String())

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"format": cty.ObjectVal(formats),
		},
		Functions: map[string]function.Function{
			"lower": stdlib.LowerFunc,
			"upper": stdlib.UpperFunc,
			"min":   stdlib.MinFunc,
			"max":   stdlib.MaxFunc,
		},
	}
}
