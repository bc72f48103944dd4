// Package harness runs conformance scenarios against the line responder.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	input: "foo\nbar\nbaz"
//	expect:
//	  lines: 3
//	  output: "Hello World!\nHello World!\nHello World!\n"
//
// Both expect fields are optional. Every scenario is also checked against
// the responder's fixed properties:
//
//   - one output line per input line
//   - every output line is exactly the fixed response
//   - output order follows input order
//
// # Golden Files
//
// RunWithGolden compares a scenario's stdout with
// testdata/golden/{scenario.Name}.golden. To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/three_lines.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Pass {
//	    for _, e := range result.Errors {
//	        log.Println(e)
//	    }
//	}
package harness
