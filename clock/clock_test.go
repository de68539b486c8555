/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	secs, nsec, err := Read()
	require.NoError(t, err)
	require.GreaterOrEqual(t, nsec, int64(0))
	require.Less(t, nsec, int64(time.Second))

	// within a couple of seconds of the runtime clock
	now := time.Now().Unix()
	require.InDelta(t, now, secs, 2)
}
