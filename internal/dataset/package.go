package dataset

import (
	"fmt"

	"github.com/docsage/docsage/internal/introspect"
)

// addFact records one fact: its retrieval chunk plus the allocated tuning
// documents for the question/answer paraphrases.
func (g *Generator) addFact(ds *Dataset, context string, questions, answers []string) {
	ds.RetrievalChunks = append(ds.RetrievalChunks, context)
	ds.TuningDocuments = append(ds.TuningDocuments, g.tuningDocuments(context, questions, answers)...)
}

// PackageDataset synthesizes the retrieval chunks and tuning documents
// describing one package: identity, parentage, children, documentation and
// public exports.
func (g *Generator) PackageDataset(record introspect.PackageRecord) (Dataset, error) {
	packageName := record.Name
	packageFullName := record.QualifiedName

	pkg := fmt.Sprintf("'%s' package", packageName)

	ds := Dataset{
		RetrievalChunks: []string{fmt.Sprintf("'%s' is a Python package.", packageName)},
	}

	if record.Parent == "" {
		rootContext := fmt.Sprintf("'%s' is the root package.", packageName)
		g.addFact(&ds, rootContext,
			[]string{
				"What is the root package?",
				"Can you tell me what the root package is?",
				"I'm trying to find out the root package. Can you help?",
				"Do you know what the root package is?",
				"I'd like to know the root package.",
				"Could you identify the root package?",
			},
			[]string{
				fmt.Sprintf("'%s' is the root package.", packageName),
				fmt.Sprintf("The root package is '%s'.", packageName),
				fmt.Sprintf("The root package you're asking about is '%s'.", packageName),
			})

		parentContext := fmt.Sprintf("'%s' has no parent package.", packageName)
		g.addFact(&ds, parentContext,
			[]string{
				fmt.Sprintf("Name parent package of '%s'.", packageName),
				fmt.Sprintf("What is the parent package of '%s'?", packageName),
				fmt.Sprintf("Can you tell me the parent package of '%s'?", packageName),
				fmt.Sprintf("Could you identify the parent package of '%s'?", packageName),
				fmt.Sprintf("I'm looking for the parent package of '%s'. Can you help?", packageName),
				fmt.Sprintf("Do you know the parent package of '%s'?", packageName),
			},
			[]string{
				fmt.Sprintf("Being the root package, '%s' has no parent package.", packageName),
				fmt.Sprintf("The root package '%s' does not have a parent package.", packageName),
				fmt.Sprintf("'%s' is a root package and therefore it does not have a parent package.", packageName),
				fmt.Sprintf("As a root package, '%s' does not possess a parent package.", packageName),
				fmt.Sprintf("'%s' is a root package, so it doesn't have a parent package.", packageName),
				fmt.Sprintf("'%s' is a root package and hence it doesn't have a parent package.", packageName),
			})
	} else {
		parentContext := fmt.Sprintf("'%s' is part of parent package '%s'.", packageName, record.Parent)
		g.addFact(&ds, parentContext,
			[]string{
				fmt.Sprintf("Name parent package of '%s' sub-package.", packageName),
				fmt.Sprintf("What is the parent package of the '%s' sub-package?", packageName),
				fmt.Sprintf("Could you tell me the parent package of '%s'?", packageName),
				fmt.Sprintf("I need to know the parent package of '%s'.", packageName),
				fmt.Sprintf("Identify the parent package for the '%s' sub-package.", packageName),
				fmt.Sprintf("Can you name the parent package of the '%s' sub-package?", packageName),
			},
			[]string{
				fmt.Sprintf("'%s' is the full name of its parent package.", record.Parent),
				fmt.Sprintf("The parent package of '%s' is '%s'.", packageName, record.Parent),
				fmt.Sprintf("The parent package for '%s' is identified as '%s'.", packageName, record.Parent),
			})

		fullNameContext := fmt.Sprintf("Full name of '%s' sub-package is '%s'.", packageName, packageFullName)
		g.addFact(&ds, fullNameContext,
			[]string{
				fmt.Sprintf("Tell the full name of '%s' sub-package.", packageName),
				fmt.Sprintf("What is the fully qualified name of the '%s' sub-package?", packageName),
				fmt.Sprintf("Could you provide the full name of the '%s' sub-package?", packageName),
				fmt.Sprintf("I need the full name of the '%s' sub-package. Can you tell me?", packageName),
				fmt.Sprintf("Can you inform me about the full name of the '%s' sub-package?", packageName),
				fmt.Sprintf("Please, reveal the full name of the '%s' sub-package.", packageName),
			},
			[]string{
				fmt.Sprintf("'%s' is the fully qualified name of '%s'.", packageFullName, packageName),
				fmt.Sprintf("Fully qualified name of '%s' sub-package is '%s'.", packageName, packageFullName),
				fmt.Sprintf("The full name of '%s' sub-package is '%s'.", packageName, packageFullName),
			})

		hierarchy, err := EnumerateElements(record.Hierarchy, "")
		if err != nil {
			return Dataset{}, err
		}

		hierarchyContext := fmt.Sprintf("Hierarchy of %s is as follows: %s.", pkg, hierarchy)
		g.addFact(&ds, hierarchyContext,
			[]string{
				fmt.Sprintf("What is the hierarchy of %s?", pkg),
				fmt.Sprintf("Can you explain the hierarchy of the %s?", pkg),
				fmt.Sprintf("Could you describe the structure of the %s?", pkg),
				fmt.Sprintf("I need to understand the hierarchy of %s. Can you help?", pkg),
				fmt.Sprintf("Please provide the hierarchy of the %s.", pkg),
				fmt.Sprintf("I'm interested in the structure of the %s. What is it?", pkg),
			},
			[]string{
				fmt.Sprintf("The hierarchy of %s is as follows: %s.", pkg, hierarchy),
				fmt.Sprintf("The hierarchy of %s is: %s.", pkg, hierarchy),
				fmt.Sprintf("The structure of %s is: %s.", pkg, hierarchy),
				fmt.Sprintf("The structure of %s is as follows: %s.", pkg, hierarchy),
			})
	}

	if len(record.SubPackages) == 0 {
		subPackageContext := fmt.Sprintf("%s does not have any further sub-packages.", pkg)
		g.addFact(&ds, subPackageContext,
			[]string{
				fmt.Sprintf("List the sub-packages of %s.", pkg),
				fmt.Sprintf("What are the sub-packages of the %s?", pkg),
				fmt.Sprintf("Could you tell me the sub-packages of %s?", pkg),
				fmt.Sprintf("I need to know the sub-packages of %s. Can you list them?", pkg),
				fmt.Sprintf("Can you provide a list of sub-packages for the %s?", pkg),
				fmt.Sprintf("Identify the sub-packages of %s.", pkg),
			},
			[]string{
				fmt.Sprintf("%s does not have any further sub-packages.", pkg),
				fmt.Sprintf("The %s does not contain any sub-packages.", pkg),
				fmt.Sprintf("The %s doesn't have any sub-packages.", pkg),
				fmt.Sprintf("%s doesn't include any sub-packages.", pkg),
				fmt.Sprintf("There are no sub-packages in the %s.", pkg),
				fmt.Sprintf("No sub-packages are present in the %s.", pkg),
			})
	} else {
		subPackageCount := len(record.SubPackages)

		countContext := fmt.Sprintf("%s has %d many sub-packages.", pkg, subPackageCount)
		g.addFact(&ds, countContext,
			[]string{
				fmt.Sprintf("How many sub-packages are there in %s?", pkg),
				fmt.Sprintf("What is the count of sub-packages in %s?", pkg),
				fmt.Sprintf("Could you tell me the number of sub-packages available in %s?", pkg),
				fmt.Sprintf("Please provide the count of sub-packages for %s.", pkg),
				fmt.Sprintf("Tell me the quantity of sub-packages present in %s.", pkg),
				fmt.Sprintf("Would you mind letting me know how many sub-packages %s contains?", pkg),
			},
			[]string{
				fmt.Sprintf("%s has %d many sub-packages.", pkg, subPackageCount),
				fmt.Sprintf("The count of sub-packages in %s is %d.", pkg, subPackageCount),
				fmt.Sprintf("%s has %d sub-packages.", pkg, subPackageCount),
				fmt.Sprintf("Number of sub-packages in %s is %d.", pkg, subPackageCount),
				fmt.Sprintf("%s has %d sub-packages.", pkg, subPackageCount),
				fmt.Sprintf("%s contains %d sub-packages.", pkg, subPackageCount),
			})

		subPackages, err := EnumerateElements(record.SubPackages, "")
		if err != nil {
			return Dataset{}, err
		}

		subPackageContext := fmt.Sprintf("Sub-packages of %s are as follows: %s.", pkg, subPackages)
		g.addFact(&ds, subPackageContext,
			[]string{
				fmt.Sprintf("List the sub-packages of %s.", pkg),
				fmt.Sprintf("What are the sub-packages of the %s?", pkg),
				fmt.Sprintf("Could you tell me the sub-packages of %s?", pkg),
				fmt.Sprintf("I need to know the sub-packages of %s. Can you list them?", pkg),
				fmt.Sprintf("Please provide the sub-packages of %s.", pkg),
				fmt.Sprintf("Can you enumerate the sub-packages of %s?", pkg),
			},
			[]string{
				fmt.Sprintf("Sub-packages of %s are as follows: %s.", pkg, subPackages),
				fmt.Sprintf("The %s has the following sub-packages: %s.", pkg, subPackages),
				fmt.Sprintf("The sub-packages of %s are: %s.", pkg, subPackages),
			})
	}

	if len(record.Modules) == 0 {
		moduleContext := fmt.Sprintf("%s does not have any further modules.", pkg)
		g.addFact(&ds, moduleContext,
			[]string{
				fmt.Sprintf("What are the modules of %s?", pkg),
				fmt.Sprintf("Can you list the modules under the %s?", pkg),
				fmt.Sprintf("Does the %s contain any modules?", pkg),
				fmt.Sprintf("I'm looking for the modules of %s. Can you help?", pkg),
				fmt.Sprintf("Tell me about the modules of %s.", pkg),
				fmt.Sprintf("Are there any modules under the %s?", pkg),
			},
			[]string{
				fmt.Sprintf("%s does not have any direct modules under itself.", pkg),
				fmt.Sprintf("There are no direct modules under the %s.", pkg),
				fmt.Sprintf("No, the %s does not contain any direct modules.", pkg),
				fmt.Sprintf("%s does not have any direct modules.", pkg),
				fmt.Sprintf("The %s does not have any direct modules.", pkg),
				fmt.Sprintf("There aren't any direct modules under the %s.", pkg),
			})
	} else {
		moduleCount := len(record.Modules)

		countContext := fmt.Sprintf("%s has %d many modules.", pkg, moduleCount)
		g.addFact(&ds, countContext,
			[]string{
				fmt.Sprintf("How many modules are there in %s?", pkg),
				fmt.Sprintf("What is the count of modules in %s?", pkg),
				fmt.Sprintf("Could you tell me the number of modules available in %s?", pkg),
				fmt.Sprintf("Please provide the count of modules for %s.", pkg),
				fmt.Sprintf("Tell me the quantity of modules present in %s.", pkg),
				fmt.Sprintf("Would you mind letting me know how many modules %s contains?", pkg),
			},
			[]string{
				fmt.Sprintf("%s has %d many modules.", pkg, moduleCount),
				fmt.Sprintf("The count of modules in %s is %d.", pkg, moduleCount),
				fmt.Sprintf("%s has %d modules.", pkg, moduleCount),
				fmt.Sprintf("The number of modules in %s is %d.", pkg, moduleCount),
				fmt.Sprintf("%s contains %d modules.", pkg, moduleCount),
			})

		modules, err := EnumerateElements(record.Modules, "")
		if err != nil {
			return Dataset{}, err
		}

		moduleContext := fmt.Sprintf("Modules of %s are as follows: %s.", pkg, modules)
		g.addFact(&ds, moduleContext,
			[]string{
				fmt.Sprintf("What are the modules of %s?", pkg),
				fmt.Sprintf("Can you list the modules of the %s?", pkg),
				fmt.Sprintf("I need to know the modules of the %s.", pkg),
				fmt.Sprintf("Could you tell me what the modules of the %s are?", pkg),
				fmt.Sprintf("I'm interested in the modules of the %s.", pkg),
				fmt.Sprintf("What modules does the %s contain?", pkg),
			},
			[]string{
				fmt.Sprintf("Direct modules under %s are as follows: %s.", pkg, modules),
				fmt.Sprintf("The direct modules under %s are: %s.", pkg, modules),
				fmt.Sprintf("The modules you're looking for in %s are: %s.", pkg, modules),
				fmt.Sprintf("The modules under %s are: %s.", pkg, modules),
				fmt.Sprintf("The modules in %s are: %s.", pkg, modules),
				fmt.Sprintf("The %s contains these modules: %s.", pkg, modules),
			})
	}

	if record.Summary == "" {
		summaryContext := fmt.Sprintf("Unfortunately, %s currently does not have any documentation.", pkg)
		g.addFact(&ds, summaryContext,
			[]string{
				fmt.Sprintf("What does %s do?", pkg),
				fmt.Sprintf("Can you tell me the functionality of the %s?", pkg),
				fmt.Sprintf("I'm curious about what the %s does. Can you enlighten me?", pkg),
				fmt.Sprintf("Could you explain the purpose of the %s?", pkg),
				fmt.Sprintf("What's the role of the %s?", pkg),
				fmt.Sprintf("What functionality does the %s provide?", pkg),
			},
			[]string{
				fmt.Sprintf("%s does not have any documentation.", pkg),
				fmt.Sprintf("The %s provides no documentation.", pkg),
				fmt.Sprintf("The %s does not come with any documentation.", pkg),
				fmt.Sprintf("The %s lacks any form of documentation.", pkg),
				fmt.Sprintf("The %s does not offer any documentation.", pkg),
				fmt.Sprintf("The %s does not have any available documentation.", pkg),
			})
	} else {
		summaryContext := fmt.Sprintf("The following is the documentation of %s: '%s'.", pkg, record.Summary)
		g.addFact(&ds, summaryContext,
			[]string{
				fmt.Sprintf("What does %s do?", pkg),
				fmt.Sprintf("Can you tell me about the %s?", pkg),
				fmt.Sprintf("I'd like to know what the %s does.", pkg),
				fmt.Sprintf("Could you explain the functionality of the %s?", pkg),
				fmt.Sprintf("What's the purpose of the %s?", pkg),
				fmt.Sprintf("I'm curious about the %s, what does it do?", pkg),
			},
			[]string{
				fmt.Sprintf("Its documentation is as follows: '%s'.", record.Summary),
				fmt.Sprintf("Here is its documentation: '%s'.", record.Summary),
				fmt.Sprintf("Here's the documentation for it: '%s'.", record.Summary),
				fmt.Sprintf("The documentation states: '%s'.", record.Summary),
				fmt.Sprintf("The purpose is described in its documentation: '%s'.", record.Summary),
				fmt.Sprintf("Its documentation reads: '%s'.", record.Summary),
			})
	}

	if len(record.Exports) == 0 {
		membersContext := fmt.Sprintf("%s does not export anything publicly using __all__ variable.", pkg)
		g.addFact(&ds, membersContext,
			[]string{
				fmt.Sprintf("What are the public members of the %s?", pkg),
				fmt.Sprintf("Can you list the public members of the %s?", pkg),
				fmt.Sprintf("Are there any public members in the %s?", pkg),
				fmt.Sprintf("I'm looking for public members of %s. Can you help?", pkg),
				fmt.Sprintf("Could you tell me the public members of the %s?", pkg),
				fmt.Sprintf("I'd like to know the public members of the %s. Can you provide that information?", pkg),
			},
			[]string{
				fmt.Sprintf("%s does not have any public member exported through '__all__'.", pkg),
				fmt.Sprintf("The %s does not export any public members through '__all__'.", pkg),
				fmt.Sprintf("The %s does not have any public members exported through '__all__'.", pkg),
			})
	} else {
		exportCount := len(record.Exports)

		countContext := fmt.Sprintf("%s has %d many public exports.", pkg, exportCount)
		g.addFact(&ds, countContext,
			[]string{
				fmt.Sprintf("How many objects does %s export publicly?", pkg),
				fmt.Sprintf("What is the count of publicly exported objects in %s?", pkg),
				fmt.Sprintf("Could you tell me the number of objects publicly exported by %s?", pkg),
				fmt.Sprintf("Please provide the count of objects publicly exported by %s.", pkg),
				fmt.Sprintf("Tell me the quantity of objects that %s exports publicly.", pkg),
				fmt.Sprintf("Would you mind letting me know how many objects %s publicly exports?", pkg),
			},
			[]string{
				fmt.Sprintf("%s exports %d many objects using __all__.", pkg, exportCount),
				fmt.Sprintf("Count of publicly exported objects in %s is %d.", pkg, exportCount),
				fmt.Sprintf("%s exports %d objects using __all__.", pkg, exportCount),
				fmt.Sprintf("Number of objects publicly exported by %s is %d.", pkg, exportCount),
				fmt.Sprintf("%s exports %d objects using __all__.", pkg, exportCount),
				fmt.Sprintf("%s publicly exports %d objects.", pkg, exportCount),
			})

		publicMembers, err := EnumerateElements(record.Exports, "")
		if err != nil {
			return Dataset{}, err
		}

		membersContext := fmt.Sprintf("%s exports following public members using __all__: %s.", pkg, publicMembers)
		g.addFact(&ds, membersContext,
			[]string{
				fmt.Sprintf("What are the public members of the %s?", pkg),
				fmt.Sprintf("Can you list the public members of the %s?", pkg),
				fmt.Sprintf("I need to know the public members of the %s. Can you tell me?", pkg),
				fmt.Sprintf("Could you tell me what the %s publicly exports?", pkg),
				fmt.Sprintf("I'm interested in the public members of the %s. What are they?", pkg),
			},
			[]string{
				fmt.Sprintf("%s publicly exports the following members using '__all__': %s.", pkg, publicMembers),
				fmt.Sprintf("The %s publicly exports the following members using '__all__': %s.", pkg, publicMembers),
				fmt.Sprintf("The %s publicly exports these members using '__all__': %s.", pkg, publicMembers),
			})
	}

	return ds, nil
}
