package dataset

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrInvalidArgument marks misuse of a generator helper, such as enumerating
// non-string elements without naming an attribute.
var ErrInvalidArgument = errors.New("invalid argument")

// EnumerateElements renders a slice as a numbered single-line listing,
// "1. a 2. b 3. c". String elements are used directly; for anything else the
// named attribute is resolved on each element, either an exported string
// field or a niladic string method. A non-string element with an empty
// attribute is an error.
func EnumerateElements(array any, attribute string) (string, error) {
	value := reflect.ValueOf(array)
	if value.Kind() != reflect.Slice {
		return "", fmt.Errorf("%w: expected slice, got %T", ErrInvalidArgument, array)
	}

	elements := make([]string, 0, value.Len())
	for i := 0; i < value.Len(); i++ {
		element := value.Index(i)
		if element.Kind() == reflect.Interface {
			element = element.Elem()
		}

		if element.Kind() == reflect.String {
			elements = append(elements, element.String())
			continue
		}
		if attribute == "" {
			return "", fmt.Errorf("%w: attribute must be set when elements of %T are not strings",
				ErrInvalidArgument, array)
		}

		text, err := resolveAttribute(element, attribute)
		if err != nil {
			return "", err
		}
		elements = append(elements, text)
	}

	var builder strings.Builder
	for i, element := range elements {
		if i > 0 {
			builder.WriteString(" ")
		}
		fmt.Fprintf(&builder, "%d. %s", i+1, element)
	}
	return builder.String(), nil
}

// resolveAttribute reads a string-valued field or calls a niladic
// string-returning method of the given name.
func resolveAttribute(element reflect.Value, attribute string) (string, error) {
	if method := element.MethodByName(attribute); method.IsValid() {
		if method.Type().NumIn() == 0 && method.Type().NumOut() == 1 &&
			method.Type().Out(0).Kind() == reflect.String {
			return method.Call(nil)[0].String(), nil
		}
	}
	if element.Kind() == reflect.Struct {
		if field := element.FieldByName(attribute); field.IsValid() && field.Kind() == reflect.String {
			return field.String(), nil
		}
	}
	return "", fmt.Errorf("%w: %s has no string attribute %q", ErrInvalidArgument, element.Type(), attribute)
}
