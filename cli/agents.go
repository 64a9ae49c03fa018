// Copyright (c) Microsoft. All rights reserved.

package cli

import (
	"fmt"
	"io"
)

const agentsNotice = `Agents mode (OpenAI platform native MCP) is not available in this setup.
Reason: the OpenAI Agents SDK targets the OpenAI platform, while this
client is configured to use Azure/OpenAI-compatible endpoints via
OPENAI_BASE_URL.

What you can do now:
  - Continue using the default chat mode.
  - Or, if you want MCP with Azure, bridge MCP servers locally: map
    their tools to function calling, execute tool calls, and feed the
    results back to the model.

If you later switch to OpenAI's platform, this mode can be replaced
with an Agents SDK-based implementation. See:
https://platform.openai.com/docs/guides/tools-connectors-mcp
`

// RunAgentsMode prints an explanation of why the experimental agents
// mode cannot run against Azure/OpenAI-compatible endpoints and returns
// the process exit status for it.
func RunAgentsMode(w io.Writer) int {
	fmt.Fprint(w, agentsNotice)
	return 2
}
