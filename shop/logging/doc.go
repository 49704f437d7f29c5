// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

/*

The simulation emits two kinds of output:

1. Internal logs: logrus records of actor lifecycle (info) and per-step
   tracing of the checkout handshake (debug, only when printing is enabled).
2. The run summary: written by the command line tool to stdout once the
   shutdown cascade has completed.

Actors attach their identity as fields ("clerk", "customer", "job") so that
interleaved traces can be filtered per actor.

*/
package logging
