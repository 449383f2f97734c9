package dataset

import (
	"errors"
	"fmt"

	"github.com/docsage/docsage/internal/introspect"
)

// ErrUnsupportedKind is returned when a member detail is of a kind the
// generator does not know. The detail types form a closed set, so hitting
// this means a programming error, not bad input.
var ErrUnsupportedKind = errors.New("unsupported member kind")

// MemberDataset synthesizes the datasets for one module member. Unclassified
// members yield a single generic dataset; classified members yield two, the
// generic member dataset (whose chunks absorb the full kind-specific chunk
// list) followed by the kind-specific dataset.
func (g *Generator) MemberDataset(record introspect.MemberRecord) ([]Dataset, error) {
	memberName := record.Name
	memberFullName := record.QualifiedName
	member := fmt.Sprintf("'%s' object", memberName)

	// The short name of the defining module, one step up the hierarchy.
	memberModule := record.Hierarchy[len(record.Hierarchy)-2]

	var ds Dataset

	parentContext := fmt.Sprintf("%s is part of parent module %s.", member, memberModule)
	g.addFact(&ds, parentContext,
		[]string{
			fmt.Sprintf("What is the parent module of %s?", member),
			fmt.Sprintf("Can you tell me the parent module of %s?", member),
			fmt.Sprintf("I'm trying to find the parent module of %s, can you help?", member),
			fmt.Sprintf("Do you know the parent module of %s?", member),
			fmt.Sprintf("I need to know the parent module of %s, can you provide that?", member),
			fmt.Sprintf("Could you inform me about the parent module of %s?", member),
		},
		[]string{
			fmt.Sprintf("'%s' is the name of its parent module.", memberModule),
			fmt.Sprintf("The parent module of %s is '%s'.", member, memberModule),
			fmt.Sprintf("Parent module of %s is '%s'.", member, memberModule),
			fmt.Sprintf("'%s' is parent module of %s.", memberModule, member),
		})

	fullNameContext := fmt.Sprintf("Full name of %s is '%s'.", member, memberFullName)
	g.addFact(&ds, fullNameContext,
		[]string{
			fmt.Sprintf("What is the full name of %s?", member),
			fmt.Sprintf("Can you tell me the full name of the %s?", member),
			fmt.Sprintf("I need to know the full name of %s. Can you help?", member),
			fmt.Sprintf("What's the fully qualified name for the %s?", member),
			fmt.Sprintf("Could you provide the full name of the %s?", member),
			fmt.Sprintf("I'm looking for the full name of %s. What is it?", member),
		},
		[]string{
			fmt.Sprintf("'%s' is its fully qualified name.", memberFullName),
			fmt.Sprintf("The fully qualified name of %s is '%s'.", member, memberFullName),
			fmt.Sprintf("The full name of %s is '%s'.", member, memberFullName),
			fmt.Sprintf("The fully qualified name for %s is '%s'.", member, memberFullName),
			fmt.Sprintf("The full name of the %s is '%s'.", member, memberFullName),
		})

	hierarchy, err := EnumerateElements(record.Hierarchy, "")
	if err != nil {
		return nil, err
	}

	hierarchyContext := fmt.Sprintf("Hierarchy of %s is as follows: %s.", member, hierarchy)
	g.addFact(&ds, hierarchyContext,
		[]string{
			fmt.Sprintf("What is the hierarchy of %s?", member),
			fmt.Sprintf("Can you explain the hierarchy of the %s?", member),
			fmt.Sprintf("Could you tell me the hierarchy of %s?", member),
			fmt.Sprintf("I would like to know the hierarchy of %s. Can you provide that?", member),
			fmt.Sprintf("Please provide the hierarchy of %s.", member),
			fmt.Sprintf("I'm interested in the hierarchy of %s. Could you share it?", member),
		},
		[]string{
			fmt.Sprintf("The hierarchy of %s is as follows: %s.", member, hierarchy),
			fmt.Sprintf("The hierarchy of the %s is: %s.", member, hierarchy),
			fmt.Sprintf("The hierarchy of %s is: %s.", member, hierarchy),
		})

	if record.Docstring == "" {
		documentationContext := fmt.Sprintf("Unfortunately, %s currently does not have any documentation.", member)
		g.addFact(&ds, documentationContext,
			[]string{
				fmt.Sprintf("What is the documentation of %s?", member),
				fmt.Sprintf("Can you provide the documentation for the %s?", member),
				fmt.Sprintf("Is there any documentation available for the %s?", member),
				fmt.Sprintf("Could you show me the documentation of the %s?", member),
				fmt.Sprintf("I'm looking for the documentation of %s. Can you help?", member),
			},
			[]string{
				fmt.Sprintf("%s does not have any documentation.", member),
				fmt.Sprintf("The %s does not have any documentation.", member),
				fmt.Sprintf("There is no documentation available for the %s.", member),
			})
	} else {
		documentationContext := fmt.Sprintf("The following is the documentation of %s: '%s'.", member, record.Docstring)
		g.addFact(&ds, documentationContext,
			[]string{
				fmt.Sprintf("What does %s do?", member),
				fmt.Sprintf("Can you explain the function of the %s?", member),
				fmt.Sprintf("I'm not sure what %s does. Can you clarify?", member),
				fmt.Sprintf("Could you tell me about the %s?", member),
				fmt.Sprintf("I need information on the %s.", member),
				fmt.Sprintf("What's the purpose of the %s?", member),
			},
			[]string{
				fmt.Sprintf("Its documentation is as follows: '%s'.", record.Docstring),
				fmt.Sprintf("Here is its documentation: '%s'.", record.Docstring),
				fmt.Sprintf("Here's its documentation for clarification: '%s'.", record.Docstring),
				fmt.Sprintf("Its documentation is: '%s'.", record.Docstring),
				fmt.Sprintf("Here's the documentation you need: '%s'.", record.Docstring),
				fmt.Sprintf("The purpose is described in its documentation: '%s'.", record.Docstring),
			})
	}

	if record.Detail == nil {
		ds.RetrievalChunks = append(
			[]string{fmt.Sprintf("'%s' is a Python object.", memberName)},
			ds.RetrievalChunks...)
		return []Dataset{ds}, nil
	}

	kind := record.Detail.Kind()

	kindContext := fmt.Sprintf("'%s' is a Python %s.", memberName, kind)
	g.addFact(&ds, kindContext,
		[]string{
			fmt.Sprintf("What is the type of %s?", member),
			fmt.Sprintf("Can you tell me the type of the %s?", member),
			fmt.Sprintf("I would like to know the type of %s. Can you help?", member),
			fmt.Sprintf("Do you know the type of %s?", member),
			fmt.Sprintf("Could you inform me about the type of %s?", member),
			fmt.Sprintf("I'm curious about type of %s. Can you provide some information?", member),
		},
		[]string{
			fmt.Sprintf("%s is of '%s' type.", member, kind),
			fmt.Sprintf("The %s is of '%s' type.", member, kind),
		})

	var (
		kindDataset Dataset
		kindChunks  []string
	)

	switch detail := record.Detail.(type) {
	case introspect.EnumDetail:
		kindDataset, kindChunks, err = g.EnumDataset(
			fmt.Sprintf("'%s' enum", memberName), record.Docstring, detail)
	case introspect.ClassDetail:
		kindDataset, kindChunks, err = g.ClassDataset(
			fmt.Sprintf("'%s' class", memberName), record.Docstring, detail)
	case introspect.FunctionDetail:
		kindDataset, kindChunks, err = g.FunctionDataset(
			fmt.Sprintf("'%s' function", memberName), record.Docstring, detail)
	default:
		return nil, fmt.Errorf("%w: %q (supports 'enum', 'class', 'function')", ErrUnsupportedKind, kind)
	}
	if err != nil {
		return nil, err
	}

	ds.RetrievalChunks = append(ds.RetrievalChunks, kindChunks...)

	return []Dataset{ds, kindDataset}, nil
}
