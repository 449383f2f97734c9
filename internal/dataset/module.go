package dataset

import (
	"fmt"

	"github.com/docsage/docsage/internal/introspect"
)

// ModuleDataset synthesizes the retrieval chunks and tuning documents
// describing one module: parentage, hierarchy, member roster, documentation
// and public exports.
func (g *Generator) ModuleDataset(record introspect.ModuleRecord) (Dataset, error) {
	moduleName := record.Name
	moduleFullName := record.QualifiedName
	module := fmt.Sprintf("'%s' module", moduleName)

	ds := Dataset{
		RetrievalChunks: []string{fmt.Sprintf("'%s' is a Python module.", moduleName)},
	}

	packageContext := fmt.Sprintf("%s is part of parent package '%s'.", module, record.Package)
	g.addFact(&ds, packageContext,
		[]string{
			fmt.Sprintf("Can you tell the the parent package of %s?", module),
			fmt.Sprintf("What is the parent package of the %s?", module),
			fmt.Sprintf("I'm trying to find the parent package of the %s. Can you help?", module),
			fmt.Sprintf("Could you inform me about the parent package of the %s?", module),
			fmt.Sprintf("I need to know the parent package of %s. Can you provide that information?", module),
			fmt.Sprintf("Can you identify the parent package for the %s?", module),
		},
		[]string{
			fmt.Sprintf("'%s' is the parent package of %s.", record.Package, module),
			fmt.Sprintf("The parent package of %s is '%s'.", module, record.Package),
			fmt.Sprintf("Parent package of %s is '%s'.", module, record.Package),
			fmt.Sprintf("'%s' is the parent package of the %s.", record.Package, module),
			fmt.Sprintf("The parent package of the %s is '%s'.", module, record.Package),
			fmt.Sprintf("Parent package for %s is '%s'.", module, record.Package),
		})

	fullNameContext := fmt.Sprintf("Full name of %s is '%s'.", module, moduleFullName)
	g.addFact(&ds, fullNameContext,
		[]string{
			fmt.Sprintf("Specify the full name of %s?", module),
			fmt.Sprintf("What is the fully qualified name for the %s?", module),
			fmt.Sprintf("Could you tell me the full name of the %s?", module),
			fmt.Sprintf("I need the full name of the %s. Can you provide it?", module),
			fmt.Sprintf("Can you specify the fully qualified name of the %s?", module),
			fmt.Sprintf("I'm looking for the full name of the %s. What is it?", module),
		},
		[]string{
			fmt.Sprintf("'%s' is fully qualified name for %s.", moduleFullName, module),
			fmt.Sprintf("The fully qualified name for the %s is '%s'.", module, moduleFullName),
			fmt.Sprintf("The full name of the %s is '%s'.", module, moduleFullName),
			fmt.Sprintf("Fully qualified name of the %s is '%s'.", module, moduleFullName),
			fmt.Sprintf("Full name of the %s you're looking for is '%s'.", module, moduleFullName),
		})

	hierarchy, err := EnumerateElements(record.Hierarchy, "")
	if err != nil {
		return Dataset{}, err
	}

	hierarchyContext := fmt.Sprintf("Hierarchy of %s is as follows: %s.", module, hierarchy)
	g.addFact(&ds, hierarchyContext,
		[]string{
			fmt.Sprintf("What is the hierarchy of %s?", module),
			fmt.Sprintf("Can you explain the hierarchy of the %s?", module),
			fmt.Sprintf("Could you describe the structure of the %s?", module),
			fmt.Sprintf("I need to understand the hierarchy of the %s. Can you help?", module),
			fmt.Sprintf("Please provide the hierarchy of the %s.", module),
			fmt.Sprintf("What does the hierarchy of the %s look like?", module),
		},
		[]string{
			fmt.Sprintf("The hierarchy of %s is as follows: %s.", module, hierarchy),
			fmt.Sprintf("The hierarchy of the %s is: %s.", module, hierarchy),
			fmt.Sprintf("The structure of the %s is: %s.", module, hierarchy),
			fmt.Sprintf("The hierarchy of the %s looks like this: %s.", module, hierarchy),
		})

	memberCount := len(record.Members)

	memberCountContext := fmt.Sprintf("%s has %d many members.", module, memberCount)
	g.addFact(&ds, memberCountContext,
		[]string{
			fmt.Sprintf("How many members does %s have?", module),
			fmt.Sprintf("What is the count of members in %s?", module),
			fmt.Sprintf("Could you tell me the number of members in %s?", module),
			fmt.Sprintf("Please provide the count of members for %s.", module),
			fmt.Sprintf("Tell me the quantity of members present in %s.", module),
			fmt.Sprintf("Would you mind letting me know how many members %s contains?", module),
		},
		[]string{
			fmt.Sprintf("%s has %d many members.", module, memberCount),
			fmt.Sprintf("The count of members in %s is %d.", module, memberCount),
			fmt.Sprintf("%s has %d members.", module, memberCount),
			fmt.Sprintf("The number of members in %s is %d.", module, memberCount),
			fmt.Sprintf("%s contains %d members.", module, memberCount),
		})

	memberNames, err := EnumerateElements(record.Members, "Name")
	if err != nil {
		return Dataset{}, err
	}

	membersContext := fmt.Sprintf("Members of %s are as follows: %s.", module, memberNames)
	g.addFact(&ds, membersContext,
		[]string{
			fmt.Sprintf("List the members of %s.", module),
			fmt.Sprintf("What are the members of the %s?", module),
			fmt.Sprintf("Can you tell me the members of the %s?", module),
			fmt.Sprintf("I need to know the members of the %s.", module),
			fmt.Sprintf("Could you list the members of the %s?", module),
			fmt.Sprintf("Please provide the members of the %s.", module),
		},
		[]string{
			fmt.Sprintf("Members of %s are as follows: %s.", module, memberNames),
			fmt.Sprintf("The %s has the following members: %s.", module, memberNames),
			fmt.Sprintf("The members of the %s are: %s.", module, memberNames),
			fmt.Sprintf("Members of %s you asked for are: %s.", module, memberNames),
			fmt.Sprintf("Members of the %s are: %s.", module, memberNames),
			fmt.Sprintf("Members of %s you requested are: %s.", module, memberNames),
		})

	if record.Summary == "" {
		summaryContext := fmt.Sprintf("Unfortunately, %s currently does not have any documentation.", module)
		g.addFact(&ds, summaryContext,
			[]string{
				fmt.Sprintf("What is the %s for?", module),
				fmt.Sprintf("Can you tell me the purpose of the %s?", module),
				fmt.Sprintf("I'd like to know what the %s is used for.", module),
				fmt.Sprintf("Could you explain the function of the %s?", module),
				fmt.Sprintf("What does the %s do?", module),
			},
			[]string{
				fmt.Sprintf("%s does not have any documentation.", module),
				fmt.Sprintf("The %s lacks any documentation.", module),
				fmt.Sprintf("There is no documentation for the %s.", module),
				fmt.Sprintf("The %s doesn't come with any documentation.", module),
				fmt.Sprintf("The %s is without any documentation.", module),
			})
	} else {
		summaryContext := fmt.Sprintf("The following is the documentation of %s: %s.", module, record.Summary)
		g.addFact(&ds, summaryContext,
			[]string{
				fmt.Sprintf("What is the '%s' module for?", moduleName),
				fmt.Sprintf("Can you tell me the purpose of the '%s' module?", moduleName),
				fmt.Sprintf("I'm curious about the '%s' module. What does it do?", moduleName),
				fmt.Sprintf("Could you explain the functionality of the '%s' module?", moduleName),
				fmt.Sprintf("I'd like to know more about the '%s' module. What's its role?", moduleName),
				fmt.Sprintf("What's the use of the '%s' module?", moduleName),
			},
			[]string{
				fmt.Sprintf("%s documents itself as follows: '%s'.", module, record.Summary),
				fmt.Sprintf("Purpose of %s is documented as: '%s'.", module, record.Summary),
				fmt.Sprintf("The %s is described as: '%s'.", module, record.Summary),
				fmt.Sprintf("The functionality of the %s is described as: '%s'.", module, record.Summary),
				fmt.Sprintf("The role of the %s is: '%s'.", module, record.Summary),
				fmt.Sprintf("Use of the %s is documented as: '%s'.", module, record.Summary),
			})
	}

	if len(record.Exports) == 0 {
		exportsContext := fmt.Sprintf("%s does not export anything publicly using __all__ variable.", module)
		g.addFact(&ds, exportsContext,
			[]string{
				fmt.Sprintf("Tell me the public members of the %s.", module),
				fmt.Sprintf("What are the public members of the %s?", module),
				fmt.Sprintf("Could you list the public members of the %s?", module),
				fmt.Sprintf("I need to know the public members of the %s.", module),
				fmt.Sprintf("Can you show me the public members of the %s?", module),
				fmt.Sprintf("I'm interested in the public members of the %s. What are they?", module),
			},
			[]string{
				fmt.Sprintf("%s lacks any public member exported through '__all__'.", module),
				fmt.Sprintf("There are no public members exported through '__all__' in the %s.", module),
				fmt.Sprintf("%s does not export any public members through '__all__'.", module),
				fmt.Sprintf("The %s does not have any public members exported through '__all__'.", module),
				fmt.Sprintf("The %s does not contain any public members exported through '__all__'.", module),
				fmt.Sprintf("%s does not export any public members through '__all__'.", module),
			})
	} else {
		exportCount := len(record.Exports)

		countContext := fmt.Sprintf("%s has %d many public exports.", module, exportCount)
		g.addFact(&ds, countContext,
			[]string{
				fmt.Sprintf("How many objects does %s export publicly?", module),
				fmt.Sprintf("What is the count of publicly exported objects in %s?", module),
				fmt.Sprintf("Could you tell me the number of objects publicly exported by %s?", module),
				fmt.Sprintf("Please provide the count of objects publicly exported by %s.", module),
				fmt.Sprintf("Tell me the quantity of objects that %s exports publicly.", module),
				fmt.Sprintf("Would you mind letting me know how many objects %s publicly exports?", module),
			},
			[]string{
				fmt.Sprintf("%s exports %d many objects using __all__.", module, exportCount),
				fmt.Sprintf("The count of publicly exported objects in %s is %d.", module, exportCount),
				fmt.Sprintf("%s exports %d objects using __all__.", module, exportCount),
				fmt.Sprintf("The number of objects publicly exported by %s is %d.", module, exportCount),
				fmt.Sprintf("%s exports %d objects using __all__.", module, exportCount),
				fmt.Sprintf("%s publicly exports %d objects.", module, exportCount),
			})

		publicExports, err := EnumerateElements(record.Exports, "")
		if err != nil {
			return Dataset{}, err
		}

		exportsContext := fmt.Sprintf("%s exports following members using __all__: %s.", module, publicExports)
		g.addFact(&ds, exportsContext,
			[]string{
				fmt.Sprintf("Tell me the public members of the %s.", module),
				fmt.Sprintf("What are the public members of the %s?", module),
				fmt.Sprintf("Could you list the public members of the %s?", module),
				fmt.Sprintf("I need to know the public members of the %s.", module),
				fmt.Sprintf("Can you show me the public members of the %s?", module),
			},
			[]string{
				fmt.Sprintf("%s publicly exports the following members using '__all__': %s.", module, publicExports),
				fmt.Sprintf("The %s publicly exports the following members using '__all__': %s.", module, publicExports),
				fmt.Sprintf("The %s publicly exports these members using '__all__': %s.", module, publicExports),
			})
	}

	return ds, nil
}
