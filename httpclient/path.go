package httpclient

import (
	"slices"

	"github.com/yosida95/uritemplate/v3"
)

// ExpandRelativePath expands the method's relative path template (RFC 6570)
// with the values of its path parameters.
//
// {name} placeholders percent-encode reserved characters ("/" becomes "%2F");
// {+name} placeholders keep them. Parameters not listed in method.PathParams
// are ignored. A non-empty relativePath overrides method.RelativePath.
//
// Every declared path parameter must appear in the template and have a value
// in params, and every template variable must be a declared path parameter;
// otherwise an InvalidUserInputError is returned.
func ExpandRelativePath(method *MethodConfig, params map[string]string, relativePath ...string) (string, error) {
	path := method.RelativePath
	if len(relativePath) > 0 && relativePath[0] != "" {
		path = relativePath[0]
	}

	tmpl, err := uritemplate.New(path)
	if err != nil {
		return "", NewInvalidUserInputError("invalid relative path template "+path, "", err)
	}

	varnames := tmpl.Varnames()
	for _, name := range varnames {
		if !slices.Contains(method.PathParams, name) {
			return "", NewInvalidUserInputError("template parameter is not a path parameter in "+path, name, nil)
		}
	}

	values := make(uritemplate.Values, len(method.PathParams))
	for _, param := range method.PathParams {
		if !slices.Contains(varnames, param) {
			return "", NewInvalidUserInputError("missing path parameter in template "+path, param, nil)
		}
		value, ok := params[param]
		if !ok {
			return "", NewInvalidUserInputError("request missing required path parameter", param, nil)
		}
		values.Set(param, uritemplate.String(value))
	}

	expanded, err := tmpl.Expand(values)
	if err != nil {
		return "", NewInvalidUserInputError("cannot expand relative path "+path, "", err)
	}
	return expanded, nil
}
