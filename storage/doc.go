// SPDX-License-Identifier: EPL-2.0

// Package storage provides the file collaborators the player reads sounds from.
//
// Three implementations are available:
//   - Dir, a directory on the host file system (the SD card of the device)
//   - FS, any fs.FS such as an embed.FS of bundled sounds
//   - Memory, files uploaded at run time and kept in RAM
//
// Errors are reported with the audio error kinds:
//
//	rc, err := storage.Dir("/sdcard").Open("sounds/chime.wav")
//	if errors.Is(err, audio.ErrNotFound) {
//	    // no such sound
//	}
package storage
