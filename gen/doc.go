// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package gen generates CNF instances for testing and benchmarking the
// solver: pigeonhole problems (a classic hard-for-resolution UNSAT family)
// and random 3-CNF.
package gen
