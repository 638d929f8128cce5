// Package command maps the textual command surface onto graph
// evaluation, persistence and visualization.
//
// Supported commands:
//
//	create_graph <name> <expression>
//	visualize_graph <name> [v1, v2, ...]
//	visualize_expression <expression> [v1, v2, ...]
//
// The optional bracketed vertex list of the visualize commands
// restricts the graph to the sub graph induced by these vertices.
// Every command and every error is reported to a Journal, errors
// never affect the processing of subsequent commands.
package command
