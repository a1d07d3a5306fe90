/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package extractor

import "errors"

// ErrEncrypted is returned by the Extract* convenience functions when the
// document is encrypted and has not been decrypted first.
var ErrEncrypted = errors.New("document is encrypted")
