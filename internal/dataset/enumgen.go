package dataset

import (
	"fmt"

	"github.com/docsage/docsage/internal/introspect"
)

// EnumDataset synthesizes the kind-specific dataset for one enum member.
// The display argument names the member the way facts embed it, for example
// "'Color' enum". The returned dataset keeps only the leading identity
// chunks; the full chunk list is returned separately for the member dataset
// to absorb.
func (g *Generator) EnumDataset(display, docstring string, detail introspect.EnumDetail) (Dataset, []string, error) {
	ds := Dataset{
		RetrievalChunks: []string{
			fmt.Sprintf("%s is a Python enum.", display),
			fmt.Sprintf("%s has following docstring: %s.", display, docstring),
		},
	}

	memberCount := len(detail.Members)

	countContext := fmt.Sprintf("%s has %d many members.", display, memberCount)
	g.addFact(&ds, countContext,
		[]string{
			fmt.Sprintf("How many members are there in %s?", display),
			fmt.Sprintf("What is the count of members in %s?", display),
			fmt.Sprintf("Can you tell me the number of members in %s?", display),
			fmt.Sprintf("Could you provide the total number of members in %s?", display),
			fmt.Sprintf("I need to know the quantity of members in %s.", display),
			fmt.Sprintf("Please inform me about the number of members in %s.", display),
		},
		[]string{
			fmt.Sprintf("%s has %d members.", display, memberCount),
			fmt.Sprintf("The count of members in %s is %d.", display, memberCount),
			fmt.Sprintf("The number of members in %s is %d.", display, memberCount),
			fmt.Sprintf("The total number of members in %s is %d.", display, memberCount),
			fmt.Sprintf("The quantity of members in %s is %d.", display, memberCount),
			fmt.Sprintf("The number of members in %s is %d.", display, memberCount),
		})

	members, err := EnumerateElements(detail.Members, "Display")
	if err != nil {
		return Dataset{}, nil, err
	}

	membersContext := fmt.Sprintf("Members of %s are as follows: %s.", display, members)
	g.addFact(&ds, membersContext,
		[]string{
			fmt.Sprintf("What are the different members of %s?", display),
			fmt.Sprintf("Can you list the different members of %s?", display),
			fmt.Sprintf("Could you tell me the different members of %s?", display),
			fmt.Sprintf("I need to know the different members of %s.", display),
			fmt.Sprintf("What does %s consist of?", display),
		},
		[]string{
			fmt.Sprintf("Different members of %s are as follows: %s.", display, members),
			fmt.Sprintf("The different members of %s include: %s.", display, members),
			fmt.Sprintf("The different members of %s are: %s.", display, members),
			fmt.Sprintf("%s consists of the following members: %s.", display, members),
		})

	names, err := EnumerateElements(detail.Members, "Name")
	if err != nil {
		return Dataset{}, nil, err
	}

	namesContext := fmt.Sprintf("Names of different members of %s are as follows: %s.", display, names)
	g.addFact(&ds, namesContext,
		[]string{
			fmt.Sprintf("List just the names of different members of %s.", display),
			fmt.Sprintf("Can you provide the names of different members of %s?", display),
			fmt.Sprintf("What are the names of different members of %s?", display),
			fmt.Sprintf("I need the names of different members of %s.", display),
			fmt.Sprintf("Could you list the names of different members of %s?", display),
			fmt.Sprintf("Show me the names of different members of %s.", display),
		},
		[]string{
			fmt.Sprintf("Different members of %s have the following names: %s.", display, names),
			fmt.Sprintf("Different members of %s are named as follows: %s.", display, names),
			fmt.Sprintf("The names of different members of %s are: %s.", display, names),
			fmt.Sprintf("Different members of %s have these names: %s.", display, names),
		})

	values, err := EnumerateElements(detail.Members, "Value")
	if err != nil {
		return Dataset{}, nil, err
	}

	valuesContext := fmt.Sprintf("Values of different members of %s are as follows: %s.", display, values)
	g.addFact(&ds, valuesContext,
		[]string{
			fmt.Sprintf("Only show the different values supported by %s.", display),
			fmt.Sprintf("What are the different values that %s supports?", display),
			fmt.Sprintf("Can you list the values supported by %s?", display),
			fmt.Sprintf("I need to know the values supported by %s.", display),
			fmt.Sprintf("Could you tell me the values that %s supports?", display),
			fmt.Sprintf("Please provide the values supported by %s.", display),
		},
		[]string{
			fmt.Sprintf("%s supports the following values: %s.", display, values),
			fmt.Sprintf("The different values that %s supports are: %s.", display, values),
			fmt.Sprintf("%s supports these values: %s.", display, values),
			fmt.Sprintf("The values that %s supports are: %s.", display, values),
			fmt.Sprintf("The values supported by %s are: %s.", display, values),
		})

	full := ds.RetrievalChunks
	ds.RetrievalChunks = full[:2]

	return ds, full, nil
}
