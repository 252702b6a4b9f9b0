// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package content

var defaultProcessor = NewProcessor()

// ProcessIncoming normalizes s with the default Processor
func ProcessIncoming(s string) string {
	return defaultProcessor.ProcessIncoming(s)
}

// RewriteOutgoing expands s with the default Processor
func RewriteOutgoing(s string, helper URLHelper) (string, error) {
	return defaultProcessor.RewriteOutgoing(s, helper)
}
