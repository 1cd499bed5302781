package codegen

import (
	"github.com/aescanero/dago-codegen-helpers/internal/helper"
	"github.com/aescanero/dago-codegen-helpers/internal/textcase"
)

func stringHelpers() []helper.Descriptor {
	return []helper.Descriptor{
		helper.Func("literate", textcase.Literate),
		helper.Func("normalize", textcase.Normalize),
		helper.Func("normalize_lower", textcase.NormalizeLower),
		helper.Func("underscore", textcase.Underscore),
		helper.Func("camel_case", textcase.CamelCase),
		helper.Func("lower_camel_case", textcase.LowerCamelCase),
		helper.Func("strip_extension", textcase.StripExtension),
	}
}
