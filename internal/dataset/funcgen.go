package dataset

import (
	"fmt"

	"github.com/docsage/docsage/internal/introspect"
)

// FunctionDataset synthesizes the kind-specific dataset for one function
// member: parameters, return, summary, raises, warns, notes, references and
// examples. The returned dataset keeps only the leading identity chunks; the
// full chunk list is returned separately for the member dataset to absorb.
func (g *Generator) FunctionDataset(display, docstring string, detail introspect.FunctionDetail) (Dataset, []string, error) {
	ds := Dataset{
		RetrievalChunks: []string{
			fmt.Sprintf("%s is a Python function.", display),
			fmt.Sprintf("%s has following docstring: %s.", display, docstring),
		},
	}

	if len(detail.Parameters) == 0 {
		parametersContext := fmt.Sprintf("%s takes no parameters.", display)
		g.addFact(&ds, parametersContext,
			[]string{
				fmt.Sprintf("List various parameters of %s.", display),
				fmt.Sprintf("What are the parameters of %s?", display),
				fmt.Sprintf("Could you tell me the parameters that %s takes?", display),
				fmt.Sprintf("I need to know the parameters for %s.", display),
				fmt.Sprintf("Can you list the parameters for %s?", display),
				fmt.Sprintf("Please provide the parameters of %s.", display),
			},
			[]string{
				fmt.Sprintf("%s does not take any parameters.", display),
				fmt.Sprintf("%s has no parameters.", display),
				fmt.Sprintf("%s doesn't require any parameters.", display),
				fmt.Sprintf("There are no parameters for %s.", display),
				fmt.Sprintf("Actually, %s doesn't have any parameters.", display),
				fmt.Sprintf("Sorry, but %s does not have any parameters.", display),
			})
	} else {
		parameterNames, err := EnumerateElements(detail.Parameters, "Details")
		if err != nil {
			return Dataset{}, nil, err
		}

		parametersContext := fmt.Sprintf("%s takes the following parameters: %s", display, parameterNames)
		g.addFact(&ds, parametersContext,
			[]string{
				fmt.Sprintf("List various parameters of %s.", display),
				fmt.Sprintf("What are the different parameters of %s?", display),
				fmt.Sprintf("Could you tell me the parameters of %s?", display),
				fmt.Sprintf("I need to know the parameters of %s.", display),
				fmt.Sprintf("Can you list the parameters for %s?", display),
				fmt.Sprintf("Please provide the parameters of %s.", display),
			},
			[]string{
				fmt.Sprintf("Different parameters of %s are as follows: %s.", display, parameterNames),
				fmt.Sprintf("%s has the following parameters: %s.", display, parameterNames),
				fmt.Sprintf("The parameters of %s are: %s.", display, parameterNames),
				fmt.Sprintf("Yes, the parameters for %s are: %s.", display, parameterNames),
				fmt.Sprintf("Parameters of %s are as follows: %s.", display, parameterNames),
			})
	}

	for _, param := range detail.Parameters {
		parameterName := param.Name
		parameter := fmt.Sprintf("'%s' argument in %s", parameterName, display)

		if !param.Default.Defined {
			defaultContext := fmt.Sprintf("%s has no default value.", parameter)
			g.addFact(&ds, defaultContext,
				[]string{
					fmt.Sprintf("Default value of %s?", parameter),
					fmt.Sprintf("What is the default value for %s?", parameter),
					fmt.Sprintf("Could you tell me default value of %s?", parameter),
					fmt.Sprintf("I'm curious about default value of %s.", parameter),
					fmt.Sprintf("I'd like to know the default value of %s.", parameter),
					fmt.Sprintf("Can you inform me about the default value of %s?", parameter),
				},
				[]string{
					fmt.Sprintf("%s does not have a default value.The %s does not come with a default value.", parameter, parameter),
					fmt.Sprintf("The %s does not possess a default value.", parameter),
					fmt.Sprintf("In response to your curiosity, %s is not assigned a default value.", parameter),
					fmt.Sprintf("To answer your query, %s does not hold a default value.", parameter),
					fmt.Sprintf("%s does not contain a default value.", parameter),
				})
		} else {
			defaultContext := fmt.Sprintf("%s has the default value of %s.", parameter, param.Default)
			g.addFact(&ds, defaultContext,
				[]string{
					fmt.Sprintf("Default value of %s?", parameter),
					fmt.Sprintf("What is the default value for %s?", parameter),
					fmt.Sprintf("Could you tell me default value of %s?", parameter),
					fmt.Sprintf("I would like to know the default value of %s.", parameter),
					fmt.Sprintf("Can you inform me about the default value of %s?", parameter),
					fmt.Sprintf("I'm interested in default value of %s.", parameter),
				},
				[]string{
					fmt.Sprintf("%s has default value of %s.", parameter, param.Default),
					fmt.Sprintf("The default value for %s is %s.", parameter, param.Default),
					fmt.Sprintf("The default value of %s is %s.", parameter, param.Default),
					fmt.Sprintf("The %s has a default value of %s.", parameter, param.Default),
					fmt.Sprintf("The %s defaults to %s.", parameter, param.Default),
					fmt.Sprintf("The default value of the %s is %s.", parameter, param.Default),
				})
		}

		if !param.Annotation.Defined {
			typeContext := fmt.Sprintf("Unfortunately, type hint for %s is missing.", parameter)
			g.addFact(&ds, typeContext,
				[]string{
					fmt.Sprintf("What is type annotation of %s?", parameter),
					fmt.Sprintf("Can you tell me type annotation of %s?", parameter),
					fmt.Sprintf("I'm curious about the type annotation of %s. Can you provide some information?", parameter),
					fmt.Sprintf("Do you have any information on the type annotation of %s?", parameter),
					fmt.Sprintf("Could you inform me about the type annotation of %s?", parameter),
					fmt.Sprintf("I'd like to know the type annotation of %s.", parameter),
				},
				[]string{
					fmt.Sprintf("%s does not have a type annotation.", parameter),
					fmt.Sprintf("The %s does not have a type annotation.", parameter),
					fmt.Sprintf("%s does not have a type annotation.", parameter),
					fmt.Sprintf("The %s you're asking about does not have a type annotation.", parameter),
				})
		} else {
			typeContext := fmt.Sprintf("%s has '%s' as type annotation.", parameter, param.Annotation)
			g.addFact(&ds, typeContext,
				[]string{
					fmt.Sprintf("What is type annotation of %s?", parameter),
					fmt.Sprintf("Can you tell me type annotation of %s?", parameter),
					fmt.Sprintf("I'm curious about the type annotation of %s. What is it?", parameter),
					fmt.Sprintf("Do you know type annotation of %s?", parameter),
					fmt.Sprintf("Could you inform me about the type annotation of %s?", parameter),
					fmt.Sprintf("What's the type annotation for %s?", parameter),
				},
				[]string{
					fmt.Sprintf("Type annotation of %s is '%s'.", parameter, param.Annotation),
					fmt.Sprintf("The type annotation of %s is '%s'.", parameter, param.Annotation),
					fmt.Sprintf("The type annotation for %s is '%s'.", parameter, param.Annotation),
				})
		}

		if param.Summary == "" {
			summaryContext := fmt.Sprintf("%s is not documented in the docstring.", parameter)
			g.addFact(&ds, summaryContext,
				[]string{
					fmt.Sprintf("What is %s for?", parameter),
					fmt.Sprintf("Can you explain the purpose of %s?", parameter),
					fmt.Sprintf("I'm not sure what %s does. Can you help?", parameter),
					fmt.Sprintf("Could you clarify the role of %s?", parameter),
					fmt.Sprintf("I'm confused about the %s. What does it do?", parameter),
					fmt.Sprintf("What does %s do?", parameter),
				},
				[]string{
					fmt.Sprintf("Docstring of %s lacks a description for '%s'.", display, parameterName),
					fmt.Sprintf("The docstring of %s doesn't provide a description.", display),
					fmt.Sprintf("Unfortunately, the docstring of %s doesn't include a description.", display),
					fmt.Sprintf("The description is missing in the docstring of %s.", display),
					fmt.Sprintf("The docstring of %s doesn't contain a description.", display),
					fmt.Sprintf("There's no description in the docstring of %s.", display),
				})
		} else {
			summaryContext := fmt.Sprintf("In the docstring, %s is described as '%s'.", parameter, param.Summary)
			g.addFact(&ds, summaryContext,
				[]string{
					fmt.Sprintf("What is %s for?", parameter),
					fmt.Sprintf("Can you explain the role of %s?", parameter),
					fmt.Sprintf("I'm curious about the %s. What does it do?", parameter),
					fmt.Sprintf("Could you tell me the purpose of %s?", parameter),
					fmt.Sprintf("What's the function of %s?", parameter),
					fmt.Sprintf("I'd like to know what '%s' does in %s.", parameterName, display),
				},
				[]string{
					fmt.Sprintf("Based on %s docstring, its role is '%s'.", display, param.Summary),
					fmt.Sprintf("According to the docstring of %s,'%s' is used for '%s'.", display, parameterName, param.Summary),
					fmt.Sprintf("If you look at the docstring of %s, you'll see that '%s' is responsible for '%s'.", display, parameterName, param.Summary),
					fmt.Sprintf("The docstring of %s indicates that '%s' serves the purpose of '%s'.", display, parameterName, param.Summary),
					fmt.Sprintf("As per the docstring of %s, '%s' functions as: '%s'.", display, parameterName, param.Summary),
					fmt.Sprintf("The docstring of %s states that '%s' does '%s'.", display, parameterName, param.Summary),
				})
		}
	}

	if !detail.Returns.Annotation.Defined {
		returnTypeContext := fmt.Sprintf("%s has no return annotation, but its return can still be non-null.", display)
		g.addFact(&ds, returnTypeContext,
			[]string{
				fmt.Sprintf("What is the return type annotation of %s?", display),
				fmt.Sprintf("Can you tell me the return type annotation of %s?", display),
				fmt.Sprintf("I'm curious about return type annotation of %s. What is it?", display),
				fmt.Sprintf("Do you know the return type annotation of %s?", display),
				fmt.Sprintf("Could you inform me about the return type annotation of %s?", display),
				fmt.Sprintf("What's the return type annotation for %s?", display),
			},
			[]string{
				fmt.Sprintf("%s lacks a return type annotation. It may still return though.", display),
				fmt.Sprintf("The function %s does not have a return type annotation. However, it may still return.", display),
				fmt.Sprintf("%s doesn't have a return type annotation. But, it could still return.", display),
				fmt.Sprintf("Actually, %s doesn't come with a return type annotation. It's possible that it still returns though.", display),
				fmt.Sprintf("Sure, %s is missing a return type annotation. It might still return though.", display),
				fmt.Sprintf("It appears that %s is without a return type annotation. It may still have a return.", display),
			})
	} else {
		returnTypeContext := fmt.Sprintf("Return of %s is annotated as '%s'.", display, detail.Returns.Annotation)
		g.addFact(&ds, returnTypeContext,
			[]string{
				fmt.Sprintf("What is the return type annotation of %s?", display),
				fmt.Sprintf("Can you tell me the return type annotation of %s?", display),
				fmt.Sprintf("I need to know the return type annotation of %s.", display),
				fmt.Sprintf("Do you know the return type annotation of %s?", display),
				fmt.Sprintf("Could you inform me about the return type annotation of %s?", display),
				fmt.Sprintf("I'm curious about the return type annotation of %s.", display),
			},
			[]string{
				fmt.Sprintf("Return type annotation for %s is '%s'.", display, detail.Returns.Annotation),
				fmt.Sprintf("The return type annotation for %s is '%s'.", display, detail.Returns.Annotation),
				fmt.Sprintf("The return type for %s is '%s'.", display, detail.Returns.Annotation),
			})
	}

	if detail.Returns.Summary == "" {
		returnSummaryContext := fmt.Sprintf("%s does not document its return.", display)
		g.addFact(&ds, returnSummaryContext,
			[]string{
				fmt.Sprintf("What does %s return?", display),
				fmt.Sprintf("Can you tell me what %s returns?", display),
				fmt.Sprintf("Do you know the return of %s?", display),
				fmt.Sprintf("I'm curious about what %s returns. Can you help?", display),
				fmt.Sprintf("What's the return of %s?", display),
				fmt.Sprintf("Could you inform me about the return of %s?", display),
			},
			[]string{
				fmt.Sprintf("Docstring of %s does not describe its return.", display),
				fmt.Sprintf("Docstring of %s doesn't provide information about its return.", display),
				fmt.Sprintf("Docstring of %s doesn't specify what it returns.", display),
				fmt.Sprintf("The docstring of %s doesn't clarify its return.", display),
				fmt.Sprintf("The return of %s is not described in its docstring.", display),
				fmt.Sprintf("The docstring of %s doesn't detail its return.", display),
			})
	} else {
		returnSummaryContext := fmt.Sprintf("Based on docstring, return of %s is as follows: '%s'.", display, detail.Returns.Summary)
		g.addFact(&ds, returnSummaryContext,
			[]string{
				fmt.Sprintf("What does %s return?", display),
				fmt.Sprintf("Can you tell me what %s returns?", display),
				fmt.Sprintf("I'm curious about what %s returns. Can you help?", display),
				fmt.Sprintf("Do you know what %s returns?", display),
				fmt.Sprintf("I'd like to know what %s returns.", display),
				fmt.Sprintf("Could you inform me about the return of %s?", display),
			},
			[]string{
				fmt.Sprintf("Based on %s docstring, the return contains: '%s'.", display, detail.Returns.Summary),
				fmt.Sprintf("As per docstring of %s, it returns: '%s'.", display, detail.Returns.Summary),
				fmt.Sprintf("The docstring of %s indicates that it returns: '%s'.", display, detail.Returns.Summary),
				fmt.Sprintf("The docstring of %s states that it returns: '%s'.", display, detail.Returns.Summary),
				fmt.Sprintf("The docstring of %s reveals that its return contains: '%s'.", display, detail.Returns.Summary),
				fmt.Sprintf("The docstring of %s specifies that it returns: '%s'.", display, detail.Returns.Summary),
			})
	}

	if detail.Summary == "" {
		summaryContext := fmt.Sprintf("Documentation for %s is missing.", display)
		g.addFact(&ds, summaryContext,
			[]string{
				fmt.Sprintf("Summarise role of %s in short.", display),
				fmt.Sprintf("Can you briefly explain the role of %s?", display),
				fmt.Sprintf("What is the purpose of %s as per its docstring?", display),
				fmt.Sprintf("Could you provide a summary of objective of %s?", display),
				fmt.Sprintf("What does %s do according to its docstring?", display),
			},
			[]string{
				fmt.Sprintf("%s docstring lacks a summary of its objective.", display),
				fmt.Sprintf("The docstring of %s doesn't provide its purpose.", display),
				fmt.Sprintf("The docstring of %s doesn't clearly state its purpose.", display),
				fmt.Sprintf("The objective of %s is not summarised in its docstring.", display),
				fmt.Sprintf("According to its docstring, role of %s is not summarised.", display),
			})
	} else {
		summaryContext := fmt.Sprintf("%s documents itself as follows: '%s'.", display, detail.Summary)
		g.addFact(&ds, summaryContext,
			[]string{
				fmt.Sprintf("Summarise role of %s in short.", display),
				fmt.Sprintf("Can you briefly explain the role of %s?", display),
				fmt.Sprintf("What does %s do, in a nutshell?", display),
				fmt.Sprintf("Could you provide a short summary of role of %s?", display),
				fmt.Sprintf("I need a brief explanation of what %s does.", display),
				fmt.Sprintf("In brief, what is the role of %s?", display),
			},
			[]string{
				fmt.Sprintf("Based on docstring, objective of %s is to: '%s'.", display, detail.Summary),
				fmt.Sprintf("According to the docstring, the purpose of %s is: '%s'.", display, detail.Summary),
				fmt.Sprintf("In a nutshell, %s is designed to: '%s'.", display, detail.Summary),
				fmt.Sprintf("From docstring, %s aims to: '%s'.", display, detail.Summary),
				fmt.Sprintf("%s is intended to: '%s'.", display, detail.Summary),
				fmt.Sprintf("The role of %s is to: '%s', according to the docstring.", display, detail.Summary),
			})
	}

	if len(detail.Raises) == 0 {
		raisesContext := fmt.Sprintf("%s does not document any specific exceptions in the docstring.", display)
		g.addFact(&ds, raisesContext,
			[]string{
				fmt.Sprintf("Does %s raise any specific exception?", display),
				fmt.Sprintf("Are there any specific exceptions that %s raises?", display),
				fmt.Sprintf("Can you tell me if %s raises any specific exceptions?", display),
				fmt.Sprintf("I want to know if %s raises any specific exceptions. Can you confirm?", display),
				fmt.Sprintf("Could %s possibly raise any specific exceptions?", display),
				fmt.Sprintf("Is it possible for %s to raise any specific exceptions?", display),
			},
			[]string{
				fmt.Sprintf("Docstring of %s does not mention any specific exceptions.", display),
				fmt.Sprintf("No specific exceptions are mentioned in the docstring of %s.", display),
				fmt.Sprintf("According to docstring, %s does not raise exceptions.", display),
				fmt.Sprintf("Docstring of %s does not mention exceptions.", display),
				fmt.Sprintf("The docstring of %s does not indicate that it raises any specific exceptions.", display),
				fmt.Sprintf("The docstring of %s does not suggest that it raises any specific exceptions.", display),
			})
	} else {
		raiseTypes, err := EnumerateElements(detail.Raises, "Details")
		if err != nil {
			return Dataset{}, nil, err
		}

		raisesContext := fmt.Sprintf("From docstring, %s can raise the following: %s", display, raiseTypes)
		g.addFact(&ds, raisesContext,
			[]string{
				fmt.Sprintf("Does %s raise any specific exception?", display),
				fmt.Sprintf("Can you tell me if %s raises any specific exceptions?", display),
				fmt.Sprintf("What exceptions, if any, does %s raise?", display),
				fmt.Sprintf("I need to know if %s throws any specific exceptions. Can you help?", display),
				fmt.Sprintf("Could you inform me about any specific exceptions that %s might raise?", display),
				fmt.Sprintf("I'm curious about the exceptions that %s might throw. Do you have any information?", display),
			},
			[]string{
				fmt.Sprintf("Based on docstring of %s, it can raise the following: %s.", display, raiseTypes),
				fmt.Sprintf("According to docstring of %s, it can raise these exceptions: %s.", display, raiseTypes),
				fmt.Sprintf("%s can raise these exceptions as per its docstring: %s.", display, raiseTypes),
				fmt.Sprintf("%s can throw following exceptions according to docstring: %s.", display, raiseTypes),
				fmt.Sprintf("The docstring of %s indicates that it can raise these exceptions: %s.", display, raiseTypes),
				fmt.Sprintf("The docstring of %s suggests that it can throw the following exceptions: %s.", display, raiseTypes),
			})
	}

	if len(detail.Warns) == 0 {
		warnsContext := fmt.Sprintf("Mention of any warnings is missing in docstring of %s.", display)
		g.addFact(&ds, warnsContext,
			[]string{
				fmt.Sprintf("Does %s throw any specific warnings?", display),
				fmt.Sprintf("Are there any specific warnings that %s throws?", display),
				fmt.Sprintf("Can you tell me if %s throws any specific warnings?", display),
				fmt.Sprintf("I want to know if %s throws any specific warnings. Can you help?", display),
				fmt.Sprintf("Could you check if %s throws any specific warnings?", display),
				fmt.Sprintf("Is it possible that %s throws any specific warnings?", display),
			},
			[]string{
				fmt.Sprintf("Docstring of %s lacks any mention of specific warnings.", display),
				fmt.Sprintf("There are no specific warnings mentioned in docstring of %s.", display),
				fmt.Sprintf("According to the docstring of %s, it doesn't throw any specific warnings.", display),
				fmt.Sprintf("No mention of specific warnings are found in the docstring of %s.", display),
				fmt.Sprintf("Based on the docstring of %s, it doesn't seem to throw any specific warnings.", display),
			})
	} else {
		warnTypes, err := EnumerateElements(detail.Warns, "Details")
		if err != nil {
			return Dataset{}, nil, err
		}

		warnsContext := fmt.Sprintf("%s documents the following warnings: %s", display, warnTypes)
		g.addFact(&ds, warnsContext,
			[]string{
				fmt.Sprintf("Does %s throw any specific warnings?", display),
				fmt.Sprintf("Can you tell me if %s throws any specific warnings?", display),
				fmt.Sprintf("I'm curious, does %s generate any particular warnings?", display),
				fmt.Sprintf("What specific warnings, if any, does %s throw?", display),
				fmt.Sprintf("Could %s possibly throw any specific warnings?", display),
				fmt.Sprintf("Are there any specific warnings that %s throws?", display),
			},
			[]string{
				fmt.Sprintf("Based on the docstring, %s can throw the following warnings: %s.", display, warnTypes),
				fmt.Sprintf("According to docstring, %s may throw these warnings: %s.", display, warnTypes),
				fmt.Sprintf("Docstring indicates that %s can generate these warnings: %s.", display, warnTypes),
				fmt.Sprintf("%s throws the following warnings as per the docstring: %s.", display, warnTypes),
				fmt.Sprintf("Docstring of %s mentions these specific warnings: %s.", display, warnTypes),
				fmt.Sprintf("The docstring for %s lists following warnings: %s.", display, warnTypes),
			})
	}

	if detail.Notes == "" {
		notesContext := fmt.Sprintf("%s has no specific notes in the docstring.", display)
		g.addFact(&ds, notesContext,
			[]string{
				fmt.Sprintf("Is there any specific details for %s to be aware of?", display),
				fmt.Sprintf("Are there any particular details I should know about %s?", display),
				fmt.Sprintf("What should I be aware of when using %s?", display),
				fmt.Sprintf("Could you tell me if there are any specific details for %s?", display),
				fmt.Sprintf("I'm curious if there are any specific details about %s?", display),
				fmt.Sprintf("Do I need to be aware of any specific details for %s?", display),
			},
			[]string{
				fmt.Sprintf("Docstring of %s lacks any notes on specific details.", display),
				fmt.Sprintf("There are no specific details noted in the docstring of %s.", display),
				fmt.Sprintf("The docstring of %s does not contain any details to be aware of.", display),
				fmt.Sprintf("No specific details are mentioned in the docstring of %s.", display),
				fmt.Sprintf("The docstring of %s does not provide any specific details.", display),
				fmt.Sprintf("The docstring of %s does not include any specific details.", display),
			})
	} else {
		notesContext := fmt.Sprintf("Docstring for %s has following notes: '%s'.", display, detail.Notes)
		g.addFact(&ds, notesContext,
			[]string{
				fmt.Sprintf("Is there any specific details for %s to be aware of?", display),
				fmt.Sprintf("What should I know about %s?", display),
				fmt.Sprintf("Could you provide some details about %s?", display),
				fmt.Sprintf("What are the important details of %s?", display),
				fmt.Sprintf("Can you tell me more about %s?", display),
				fmt.Sprintf("I need information about %s.", display),
			},
			[]string{
				fmt.Sprintf("Docstring of %s highlights the following: '%s'.", display, detail.Notes),
				fmt.Sprintf("Users should be aware that docstring includes the following details: '%s'.", detail.Notes),
				fmt.Sprintf("The docstring of %s provides the following information: '%s'.", display, detail.Notes),
				fmt.Sprintf("The important details of %s are highlighted in its docstring: '%s'.", display, detail.Notes),
				fmt.Sprintf("The docstring of %s contains the following details: '%s'.", display, detail.Notes),
				fmt.Sprintf("The docstring of %s contains the following information: '%s'.", display, detail.Notes),
			})
	}

	if detail.References == "" {
		referencesContext := fmt.Sprintf("%s documents no references in its docstring.", display)
		g.addFact(&ds, referencesContext,
			[]string{
				fmt.Sprintf("Is there any reference for %s?", display),
				fmt.Sprintf("Can I find any references in the documentation for %s?", display),
				fmt.Sprintf("Does the documentation for %s include any references?", display),
				fmt.Sprintf("Are there references available in the %s documentation?", display),
				fmt.Sprintf("I'm looking for references in %s documentation. Are there any?", display),
				fmt.Sprintf("Could you tell me if there are any references for %s?", display),
			},
			[]string{
				fmt.Sprintf("Documentation for %s contains no references.", display),
				fmt.Sprintf("The documentation for %s does not contain any references.", display),
				fmt.Sprintf("There are no references in the documentation for %s.", display),
				fmt.Sprintf("The %s documentation does not include any references.", display),
				fmt.Sprintf("The documentation for %s contains no references.", display),
				fmt.Sprintf("Documentation for %s lacks any references.", display),
			})
	} else {
		referencesContext := fmt.Sprintf("%s list the following references: %s", display, detail.References)
		g.addFact(&ds, referencesContext,
			[]string{
				fmt.Sprintf("Is there any reference for %s?", display),
				fmt.Sprintf("Can you provide a reference for %s?", display),
				fmt.Sprintf("Where can I find a reference for %s?", display),
				fmt.Sprintf("Could you point me to the reference for %s?", display),
				fmt.Sprintf("I'm looking for a reference for %s. Can you help?", display),
				fmt.Sprintf("What's the reference for %s?", display),
			},
			[]string{
				fmt.Sprintf("The docstring links the following: '%s'.", detail.References),
				fmt.Sprintf("The docstring provides the following reference: '%s'.", detail.References),
				fmt.Sprintf("The docstring links to: '%s'.", detail.References),
				fmt.Sprintf("The docstring points to these reference: '%s'.", detail.References),
				fmt.Sprintf("The docstring links to this reference: '%s'.", detail.References),
				fmt.Sprintf("The reference for that is in the docstring: '%s'.", detail.References),
			})
	}

	if detail.Examples == "" {
		examplesContext := fmt.Sprintf("Documentation of %s lacks any examples.", display)
		g.addFact(&ds, examplesContext,
			[]string{
				fmt.Sprintf("Is there any example for %s?", display),
				fmt.Sprintf("Can I find an example for %s in the docstring?", display),
				fmt.Sprintf("Does the docstring for %s include any examples?", display),
				fmt.Sprintf("I'm looking for an example of %s in docstring, is there one?", display),
				fmt.Sprintf("Are there any examples provided in the docstring for %s?", display),
				fmt.Sprintf("Could you tell me if there's an example for %s in docstring?", display),
			},
			[]string{
				fmt.Sprintf("Docstring for %s lacks any examples.", display),
				fmt.Sprintf("Docstring for %s does not contain any examples.", display),
				fmt.Sprintf("The docstring for %s does not include any examples.", display),
				fmt.Sprintf("Docstring for %s does not provide any examples.", display),
				fmt.Sprintf("No examples are provided in the docstring for %s.", display),
				fmt.Sprintf("%s documents no examples.", display),
			})
	} else {
		examplesContext := fmt.Sprintf("Docstring of %s contains following examples: '%s'.", display, detail.Examples)
		g.addFact(&ds, examplesContext,
			[]string{
				fmt.Sprintf("Is there any example for %s?", display),
				fmt.Sprintf("Can you provide an example of %s?", display),
				fmt.Sprintf("I'm looking for examples of %s, can you help?", display),
				fmt.Sprintf("Where can I find examples for %s?", display),
				fmt.Sprintf("Could you show me some examples of %s?", display),
				fmt.Sprintf("I need examples for %s, where can I find them?", display),
			},
			[]string{
				fmt.Sprintf("Documentation of %s contains these examples: '%s'.", display, detail.Examples),
				fmt.Sprintf("In documentation of %s, these examples can be found: '%s'.", display, detail.Examples),
				fmt.Sprintf("Examples for %s are available in its documentation: '%s'.", display, detail.Examples),
				fmt.Sprintf("In documentation for %s, these examples can be found: '%s'.", display, detail.Examples),
				fmt.Sprintf("The documentation of %s includes these examples: '%s'.", display, detail.Examples),
			})
	}

	full := ds.RetrievalChunks
	ds.RetrievalChunks = full[:2]

	return ds, full, nil
}
