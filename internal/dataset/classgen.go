package dataset

import (
	"fmt"

	"github.com/docsage/docsage/internal/introspect"
)

// ClassDataset synthesizes the kind-specific dataset for one class member:
// constructor parameters, public methods, public attributes, summary and
// notes. The returned dataset keeps only the leading identity chunks; the
// full chunk list is returned separately for the member dataset to absorb.
func (g *Generator) ClassDataset(display, docstring string, detail introspect.ClassDetail) (Dataset, []string, error) {
	ds := Dataset{
		RetrievalChunks: []string{
			fmt.Sprintf("%s is a Python class.", display),
			fmt.Sprintf("%s has following docstring: %s.", display, docstring),
		},
	}

	if len(detail.Parameters) == 0 {
		parametersContext := fmt.Sprintf("%s requires no arguments for instantiation.", display)
		g.addFact(&ds, parametersContext,
			[]string{
				fmt.Sprintf("What are the different parameters of %s?", display),
				fmt.Sprintf("Can you tell me the parameters required for %s?", display),
				fmt.Sprintf("What arguments do I need to instantiate %s?", display),
				fmt.Sprintf("Do I need any parameters to use %s?", display),
				fmt.Sprintf("What should I pass as arguments when creating an instance of %s?", display),
				fmt.Sprintf("Are there any parameters needed for the instantiation of %s?", display),
			},
			[]string{
				fmt.Sprintf("%s needs no arguments for instantiation.", display),
				fmt.Sprintf("No parameters are required for instantiating %s.", display),
				fmt.Sprintf("Arguments are not needed to instantiate %s.", display),
				fmt.Sprintf("%s can be used without any parameters.", display),
				fmt.Sprintf("There's no need to pass any arguments when creating an instance of %s.", display),
				fmt.Sprintf("The instantiation of %s doesn't require any parameters.", display),
			})
	} else {
		parameterNames, err := EnumerateElements(detail.Parameters, "Details")
		if err != nil {
			return Dataset{}, nil, err
		}

		parametersContext := fmt.Sprintf("%s requires the following arguments for initialisation: %s", display, parameterNames)
		g.addFact(&ds, parametersContext,
			[]string{
				fmt.Sprintf("What are the different parameters of %s?", display),
				fmt.Sprintf("Can you list the parameters for %s?", display),
				fmt.Sprintf("I need to know the parameters of %s.", display),
				fmt.Sprintf("Tell me the parameters that %s supports.", display),
				fmt.Sprintf("What arguments does %s take for initialisation?", display),
			},
			[]string{
				fmt.Sprintf("%s supports these arguments to initiate a new instance: %s.", display, parameterNames),
				fmt.Sprintf("%s can be initiated with these arguments: %s.", display, parameterNames),
				fmt.Sprintf("The parameters to initiate a new instance of %s are: %s.", display, parameterNames),
				fmt.Sprintf("To initialise %s, you can use these arguments: %s.", display, parameterNames),
			})
	}

	for _, param := range detail.Parameters {
		parameterName := param.Name
		parameter := fmt.Sprintf("'%s' argument in %s", parameterName, display)

		if !param.Default.Defined {
			defaultContext := fmt.Sprintf("%s does not have a default value.", parameter)
			g.addFact(&ds, defaultContext,
				[]string{
					fmt.Sprintf("Tell default value of %s.", parameter),
					fmt.Sprintf("What is the default value of %s?", parameter),
					fmt.Sprintf("Could you inform me about default value of %s?", parameter),
					fmt.Sprintf("I need to know the default value of %s. Can you help?", parameter),
					fmt.Sprintf("Can you tell me if %s has default value?", parameter),
					fmt.Sprintf("I'm curious about default value of %s.", parameter),
				},
				[]string{
					fmt.Sprintf("%s does not have a default value.", parameter),
					fmt.Sprintf("The %s does not have a default value.", parameter),
				})
		} else {
			defaultContext := fmt.Sprintf("%s is the default value of %s.", param.Default, parameter)
			g.addFact(&ds, defaultContext,
				[]string{
					fmt.Sprintf("Tell default value of %s.", parameter),
					fmt.Sprintf("What is the default value of %s?", parameter),
					fmt.Sprintf("Could you inform me about default value of %s?", parameter),
					fmt.Sprintf("I need to know the default value of %s.", parameter),
					fmt.Sprintf("Can you provide default value of %s?", parameter),
					fmt.Sprintf("Please, disclose default value of %s.", parameter),
				},
				[]string{
					fmt.Sprintf("%s takes %s by default.", parameter, param.Default),
					fmt.Sprintf("Default value of %s is %s.", parameter, param.Default),
					fmt.Sprintf("The default value of %s is %s.", parameter, param.Default),
				})
		}

		if !param.Annotation.Defined {
			typeContext := fmt.Sprintf("Type hint for %s is unavailable.", parameter)
			g.addFact(&ds, typeContext,
				[]string{
					fmt.Sprintf("Name type hint for %s.", parameter),
					fmt.Sprintf("What is the type hint for %s?", parameter),
					fmt.Sprintf("Can you tell me the type hint for %s?", parameter),
					fmt.Sprintf("I'm looking for the type hint for %s. Can you help?", parameter),
					fmt.Sprintf("Could you provide the type hint for %s?", parameter),
					fmt.Sprintf("I need to know the type hint for %s.", parameter),
				},
				[]string{
					fmt.Sprintf("%s does not have a type annotation.", parameter),
					fmt.Sprintf("There is no type annotation for the %s.", parameter),
					fmt.Sprintf("The %s is not annotated with a type.", parameter),
					fmt.Sprintf("The %s does not have a type annotation.", parameter),
					fmt.Sprintf("%s does not have type annotation.", parameter),
					fmt.Sprintf("The %s does not come with a type annotation.", parameter),
				})
		} else {
			typeContext := fmt.Sprintf("%s is annotated as '%s' type.", parameter, param.Annotation)
			g.addFact(&ds, typeContext,
				[]string{
					fmt.Sprintf("Name type hint for %s.", parameter),
					fmt.Sprintf("What is the type hint for %s?", parameter),
					fmt.Sprintf("Could you tell me the type hint for %s?", parameter),
					fmt.Sprintf("I need to know the type hint for %s.", parameter),
					fmt.Sprintf("Identify the type hint for %s.", parameter),
					fmt.Sprintf("Can you specify the type hint for %s?", parameter),
				},
				[]string{
					fmt.Sprintf("%s has '%s' as type hint.", parameter, param.Annotation),
					fmt.Sprintf("The type hint for %s is '%s'.", parameter, param.Annotation),
				})
		}

		if param.Summary == "" {
			summaryContext := fmt.Sprintf("%s lacks any documentation in the docstring.", parameter)
			g.addFact(&ds, summaryContext,
				[]string{
					fmt.Sprintf("What does %s do?", parameter),
					fmt.Sprintf("Can you explain the role of %s?", parameter),
					fmt.Sprintf("I'm trying to understand what %s does. Can you help?", parameter),
					fmt.Sprintf("What is the function of %s?", parameter),
					fmt.Sprintf("Could you tell me what '%s' does in %s?", parameterName, display),
					fmt.Sprintf("I'm curious about the purpose of %s. Can you enlighten me?", parameter),
				},
				[]string{
					fmt.Sprintf("Docstring of %s does not describe '%s'.", display, parameterName),
					fmt.Sprintf("The docstring of %s does not provide any information about '%s'.", display, parameterName),
					fmt.Sprintf("The docstring of %s does not mention anything about '%s'.", display, parameterName),
					fmt.Sprintf("There is no description of '%s' in the docstring of %s.", parameterName, display),
					fmt.Sprintf("The docstring of %s does not contain any details about '%s'.", display, parameterName),
					fmt.Sprintf("The docstring of %s does not discuss '%s'.", display, parameterName),
				})
		} else {
			summaryContext := fmt.Sprintf("As per docstring, role of %s is: '%s'.", parameter, param.Summary)
			g.addFact(&ds, summaryContext,
				[]string{
					fmt.Sprintf("What does %s do?", parameter),
					fmt.Sprintf("Can you explain the role of %s?", parameter),
					fmt.Sprintf("I'm curious about %s. What does it do?", parameter),
					fmt.Sprintf("Could you tell me what %s does?", parameter),
					fmt.Sprintf("What's the function of %s?", parameter),
					fmt.Sprintf("I'd like to know the purpose of %s.", parameter),
				},
				[]string{
					fmt.Sprintf("%s documents role of '%s' as follows: '%s'.", display, parameterName, param.Summary),
					fmt.Sprintf("%s describes '%s' as follows: '%s'.", display, parameterName, param.Summary),
					fmt.Sprintf("In %s, '%s' is documented as follows: '%s'.", display, parameterName, param.Summary),
					fmt.Sprintf("%s is described as follows: '%s'.", parameter, param.Summary),
					fmt.Sprintf("%s describes the function of '%s' as follows: '%s'.", display, parameterName, param.Summary),
					fmt.Sprintf("In %s, the purpose of '%s' is defined as follows: '%s'.", display, parameterName, param.Summary),
				})
		}
	}

	if len(detail.Methods) == 0 {
		methodNamesContext := fmt.Sprintf("%s has no public (without _ as the prefix) methods.", display)
		g.addFact(&ds, methodNamesContext,
			[]string{
				fmt.Sprintf("List names of the public methods of %s.", display),
				fmt.Sprintf("Can you provide the names of the public methods for %s?", display),
				fmt.Sprintf("What are the public methods of %s?", display),
				fmt.Sprintf("I need to know the public methods of %s. Can you list them?", display),
				fmt.Sprintf("Could you list the public methods of %s?", display),
				fmt.Sprintf("Show me the public methods of %s.", display),
			},
			[]string{
				fmt.Sprintf("%s does not have any public methods (not starting with '_').", display),
				fmt.Sprintf("%s does not have any public methods.", display),
				fmt.Sprintf("There are no public methods (not starting with '_') in %s.", display),
				fmt.Sprintf("%s does not have any public methods.", display),
				fmt.Sprintf("%s does not contain any public methods (not starting with '_').", display),
				fmt.Sprintf("It appears that %s does not have any public methods.", display),
			})
	} else {
		methodCount := len(detail.Methods)

		countContext := fmt.Sprintf("%s has %d many public methods.", display, methodCount)
		g.addFact(&ds, countContext,
			[]string{
				fmt.Sprintf("How many public methods does %s have?", display),
				fmt.Sprintf("What is the count of public methods in %s?", display),
				fmt.Sprintf("Could you tell me the number of public methods in %s?", display),
				fmt.Sprintf("Please provide the count of public methods for %s.", display),
				fmt.Sprintf("Tell me the quantity of public methods present in %s.", display),
				fmt.Sprintf("Would you mind letting me know how many public methods %s contains?", display),
			},
			[]string{
				fmt.Sprintf("%s has %d many public methods.", display, methodCount),
				fmt.Sprintf("The count of public methods in %s is %d.", display, methodCount),
				fmt.Sprintf("%s has %d public methods.", display, methodCount),
				fmt.Sprintf("The number of public methods in %s is %d.", display, methodCount),
				fmt.Sprintf("%s has %d public methods.", display, methodCount),
				fmt.Sprintf("%s contains %d public methods.", display, methodCount),
			})

		publicMethods, err := EnumerateElements(detail.Methods, "Name")
		if err != nil {
			return Dataset{}, nil, err
		}

		methodNamesContext := fmt.Sprintf("%s has the following public methods: %s", display, publicMethods)
		g.addFact(&ds, methodNamesContext,
			[]string{
				fmt.Sprintf("List names of the public methods of %s.", display),
				fmt.Sprintf("Can you provide the names of the public methods for %s?", display),
				fmt.Sprintf("What are the public methods of %s?", display),
				fmt.Sprintf("I need to know the public methods of %s.", display),
				fmt.Sprintf("Could you list the public methods of %s?", display),
				fmt.Sprintf("Please show me the public methods of %s.", display),
			},
			[]string{
				fmt.Sprintf("Here are the public methods of %s: %s.", display, publicMethods),
				fmt.Sprintf("The public methods of %s that do not start with '_' are: %s.", display, publicMethods),
				fmt.Sprintf("The public methods of %s (excluding those starting with '_') are: %s.", display, publicMethods),
				fmt.Sprintf("The public methods of %s (those not starting with '_') are: %s.", display, publicMethods),
				fmt.Sprintf("The public methods of %s (not beginning with '_') are: %s.", display, publicMethods),
				fmt.Sprintf("The public methods of %s (excluding those with a prefix '_') are: %s.", display, publicMethods),
			})
	}

	for _, classMethod := range detail.Methods {
		method := fmt.Sprintf("'%s' method of %s", classMethod.Name, display)

		if len(classMethod.Parameters) == 0 {
			parametersContext := fmt.Sprintf("%s takes no arguments.", method)
			g.addFact(&ds, parametersContext,
				[]string{
					fmt.Sprintf("What arguments do %s accept?", method),
					fmt.Sprintf("Can you tell me the parameters that %s requires?", method),
					fmt.Sprintf("What are the inputs for the %s in %s?", method, display),
					fmt.Sprintf("Does the %s need any arguments?", method),
					fmt.Sprintf("What parameters should I pass to %s?", method),
					fmt.Sprintf("What are required arguments for %s?", method),
				},
				[]string{
					fmt.Sprintf("%s does not take any parameters.", method),
					fmt.Sprintf("The %s does not require any parameters.", method),
					fmt.Sprintf("There are no inputs for the %s in %s.", method, display),
					fmt.Sprintf("%s does not need any arguments.", method),
					fmt.Sprintf("No parameters need to be passed to the %s.", method),
					fmt.Sprintf("%s does not require any arguments.", method),
				})
		} else {
			methodParameters, err := EnumerateElements(classMethod.Parameters, "")
			if err != nil {
				return Dataset{}, nil, err
			}

			parametersContext := fmt.Sprintf("%s accepts following parameters: %s", method, methodParameters)
			g.addFact(&ds, parametersContext,
				[]string{
					fmt.Sprintf("What arguments do %s accept?", method),
					fmt.Sprintf("Can you tell me the parameters that %s requires?", method),
					fmt.Sprintf("I need to know arguments for %s.", method),
					fmt.Sprintf("What are the parameters for '%s'?", method),
					fmt.Sprintf("Could you list the arguments that the %s takes?", method),
				},
				[]string{
					fmt.Sprintf("%s takes the following parameters: %s.", method, methodParameters),
					fmt.Sprintf("%s requires these parameters: %s.", method, methodParameters),
					fmt.Sprintf("The %s has these arguments: %s.", method, methodParameters),
					fmt.Sprintf("The parameters for %s are: %s.", method, methodParameters),
					fmt.Sprintf("The %s takes these arguments: %s.", method, methodParameters),
				})
		}

		if classMethod.Summary == "" {
			summaryContext := fmt.Sprintf("Unfortunately, %s is not documented.", method)
			g.addFact(&ds, summaryContext,
				[]string{
					fmt.Sprintf("What does %s do?", method),
					fmt.Sprintf("Can you explain functionality of %s?", method),
					fmt.Sprintf("I'm trying to understand what %s does. Can you help?", method),
					fmt.Sprintf("Could you describe the role of %s?", method),
					fmt.Sprintf("I'm not sure what %s does. Can you clarify?", method),
					fmt.Sprintf("What's the purpose of %s?", method),
				},
				[]string{
					fmt.Sprintf("Docstring of %s is missing.", method),
					fmt.Sprintf("The docstring for %s is not available.", method),
					fmt.Sprintf("The docstring for %s is not provided.", method),
					fmt.Sprintf("There is no docstring available for %s.", method),
					fmt.Sprintf("The %s lacks a docstring.", method),
					fmt.Sprintf("The %s doesn't have a docstring.", method),
				})
		} else {
			summaryContext := fmt.Sprintf("Based on docstring, %s has the purpose of '%s'.", method, classMethod.Summary)
			g.addFact(&ds, summaryContext,
				[]string{
					fmt.Sprintf("What does %s do?", method),
					fmt.Sprintf("Can you explain the function of %s?", method),
					fmt.Sprintf("I'm curious about the %s. What's its purpose?", method),
					fmt.Sprintf("Could you tell me what the %s does?", method),
					fmt.Sprintf("I'd like to understand role of %s.", method),
					fmt.Sprintf("What's the functionality of the %s?", method),
				},
				[]string{
					fmt.Sprintf("Based on method docstring, its role is to '%s'.", classMethod.Summary),
					fmt.Sprintf("According to method docstring, it is designed to '%s'.", classMethod.Summary),
					fmt.Sprintf("If we look at the docstring of %s, we can see that it's meant to '%s'.", method, classMethod.Summary),
					fmt.Sprintf("The docstring of %s indicates that its function is to '%s'.", method, classMethod.Summary),
					fmt.Sprintf("Method docstring reveals that its job is to '%s'.", classMethod.Summary),
					fmt.Sprintf("As per the method docstring, it's designed to '%s'.", classMethod.Summary),
				})
		}
	}

	if len(detail.Attributes) == 0 {
		attributeNamesContext := fmt.Sprintf("%s has no public attributes.", display)
		g.addFact(&ds, attributeNamesContext,
			[]string{
				fmt.Sprintf("Are there any public attributes of %s?", display),
				fmt.Sprintf("Does %s have any public attributes?", display),
				fmt.Sprintf("Can you tell me if %s has any public attributes?", display),
				fmt.Sprintf("I'm looking for public attributes of %s. Are there any?", display),
				fmt.Sprintf("Is it possible to find any public attributes in %s?", display),
			},
			[]string{
				fmt.Sprintf("%s has no public attributes (not starting with '_').", display),
				fmt.Sprintf("%s does not have any public attributes.", display),
				fmt.Sprintf("%s does not have any public attributes (not starting with '_').", display),
				fmt.Sprintf("There are no public attributes (not starting with '_') for %s.", display),
				fmt.Sprintf("It's not possible to find any public attributes in %s.", display),
			})
	} else {
		attributeCount := len(detail.Attributes)

		countContext := fmt.Sprintf("%s has %d many public attributes.", display, attributeCount)
		g.addFact(&ds, countContext,
			[]string{
				fmt.Sprintf("How many public attributes does %s have?", display),
				fmt.Sprintf("What is the count of public attributes in %s?", display),
				fmt.Sprintf("Could you tell me the number of public attributes in %s?", display),
				fmt.Sprintf("Please provide the count of public attributes for %s.", display),
				fmt.Sprintf("Tell me the quantity of public attributes present in %s.", display),
				fmt.Sprintf("Would you mind letting me know how many public attributes %s contains?", display),
			},
			[]string{
				fmt.Sprintf("%s has %d many public attributes.", display, attributeCount),
				fmt.Sprintf("The count of public attributes in %s is %d.", display, attributeCount),
				fmt.Sprintf("%s has %d public attributes.", display, attributeCount),
				fmt.Sprintf("Number of public attributes in %s is %d.", display, attributeCount),
				fmt.Sprintf("%s has %d public attributes.", display, attributeCount),
				fmt.Sprintf("%s contains %d public attributes.", display, attributeCount),
			})

		publicAttributes, err := EnumerateElements(detail.Attributes, "")
		if err != nil {
			return Dataset{}, nil, err
		}

		attributeNamesContext := fmt.Sprintf("%s has following public attributes: %s", display, publicAttributes)
		g.addFact(&ds, attributeNamesContext,
			[]string{
				fmt.Sprintf("Are there any public attributes of %s?", display),
				fmt.Sprintf("Can you list the public attributes of %s?", display),
				fmt.Sprintf("What are the public attributes of %s?", display),
				fmt.Sprintf("I need to know the public attributes of %s.", display),
				fmt.Sprintf("Could you tell me the public attributes of %s?", display),
			},
			[]string{
				fmt.Sprintf("These are the public attributes of %s: %s.", display, publicAttributes),
				fmt.Sprintf("%s has the following public attributes (not starting with '_'): %s.", display, publicAttributes),
				fmt.Sprintf("The public attributes of %s (those not starting with '_') are: %s.", display, publicAttributes),
				fmt.Sprintf("The public attributes of %s are: %s.", display, publicAttributes),
				fmt.Sprintf("Public attributes of %s (not starting with '_') are: %s.", display, publicAttributes),
			})
	}

	if detail.Summary == "" {
		summaryContext := fmt.Sprintf("Unfortunately, %s does not document its objective.", display)
		g.addFact(&ds, summaryContext,
			[]string{
				fmt.Sprintf("What does %s do in short?", display),
				fmt.Sprintf("Can you briefly explain the function of %s?", display),
				fmt.Sprintf("Could you tell me what %s is used for?", display),
				fmt.Sprintf("I'm not sure what %s does. Can you clarify?", display),
				fmt.Sprintf("What's the purpose of %s?", display),
			},
			[]string{
				fmt.Sprintf("Docstring of %s lacks a summary of its objective.", display),
				fmt.Sprintf("Docstring of %s doesn't provide a concise summary of its purpose.", display),
				fmt.Sprintf("The docstring of %s doesn't contain a brief description of its function.", display),
				fmt.Sprintf("The docstring of %s doesn't succinctly explain its role.", display),
				fmt.Sprintf("Docstring of %s doesn't have any explanation of its objective.", display),
			})
	} else {
		summaryContext := fmt.Sprintf("%s documents its purpose as follows: '%s'.", display, detail.Summary)
		g.addFact(&ds, summaryContext,
			[]string{
				fmt.Sprintf("What does %s do in short?", display),
				fmt.Sprintf("Can you briefly explain the function of %s?", display),
				fmt.Sprintf("I'm curious about %s, what's its purpose?", display),
				fmt.Sprintf("Could you give me a quick rundown on what %s does?", display),
				fmt.Sprintf("What's the role of %s in a nutshell?", display),
				fmt.Sprintf("Can you summarise the function of %s?", display),
			},
			[]string{
				fmt.Sprintf("Based on documentation, objective of %s is to: '%s'.", display, detail.Summary),
				fmt.Sprintf("According to the documentation, %s is designed to: '%s'.", display, detail.Summary),
				fmt.Sprintf("As per the documentation, %s aims to: '%s'.", display, detail.Summary),
				fmt.Sprintf("The documentation states that the role of %s is to: '%s'.", display, detail.Summary),
				fmt.Sprintf("The documentation indicates that the purpose of %s is to: '%s'.", display, detail.Summary),
				fmt.Sprintf("The documentation outlines that %s is intended to: '%s'.", display, detail.Summary),
			})
	}

	if detail.Notes == "" {
		notesContext := fmt.Sprintf("Docstring of %s has contains no specific implementation details.", display)
		g.addFact(&ds, notesContext,
			[]string{
				fmt.Sprintf("Mention any specific details for %s to be aware of.", display),
				fmt.Sprintf("What are the specific details to be aware of for %s?", display),
				fmt.Sprintf("Could you tell me any specifics for %s that I should be aware of?", display),
				fmt.Sprintf("Are there any specific details for %s that I need to know?", display),
				fmt.Sprintf("I need to know the specific details for %s. Can you provide them?", display),
				fmt.Sprintf("Can you specify any details for %s that I should be aware of?", display),
			},
			[]string{
				fmt.Sprintf("Docstring of %s does not note on specific details.", display),
				fmt.Sprintf("There are no specific details noted in the docstring of %s.", display),
				fmt.Sprintf("The docstring of %s doesn't highlight any details.", display),
				fmt.Sprintf("No specific details are mentioned in the docstring of %s.", display),
				fmt.Sprintf("The docstring of %s does not contain any details.", display),
				fmt.Sprintf("The docstring of %s does not specify any details to be aware of.", display),
			})
	} else {
		notesContext := fmt.Sprintf("In docstring, %s specifies the following: '%s'.", display, detail.Notes)
		g.addFact(&ds, notesContext,
			[]string{
				fmt.Sprintf("Mention any specific details for %s to be aware of.", display),
				fmt.Sprintf("What are specifics that I should be aware of before using %s?", display),
				fmt.Sprintf("Could you specify the details for %s to take note of?", display),
				fmt.Sprintf("Can you list the details for %s to keep in mind?", display),
				fmt.Sprintf("What should users of %s be mindful of?", display),
				fmt.Sprintf("What details does the user of %s need to know?", display),
			},
			[]string{
				fmt.Sprintf("The %s docstring highlights the following: '%s'.", display, detail.Notes),
				fmt.Sprintf("The details you should know to use %s are highlighted in docstring: '%s'.", display, detail.Notes),
				fmt.Sprintf("The docstring for %s specifies the following details: '%s'.", display, detail.Notes),
				fmt.Sprintf("The docstring for %s lists the following details: '%s'.", display, detail.Notes),
				fmt.Sprintf("The docstring for %s mentions the following points to be mindful of: '%s'.", display, detail.Notes),
				fmt.Sprintf("User of %s needs to know the following details: '%s'.", display, detail.Notes),
			})
	}

	full := ds.RetrievalChunks
	ds.RetrievalChunks = full[:2]

	return ds, full, nil
}
