/*
Package segment is the input driver for cluster parsing: it tags raw
text with Unicode properties and boundary signals, and splits it into
same-script runs, the unit a cluster parser operates on.

Typical usage feeds a whole text through Clusters:

	for _, c := range segment.Clusters(text) {
		// c is a cluster.Cluster with byte offsets into text
	}

or drives the stages separately, e.g. to re-use a text's tagging:

	for _, run := range segment.ScriptRuns(text) {
		parser := cluster.NewParser(run.Script, segment.NewSource(run.Text))
		...
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package segment
