// SPDX-License-Identifier: EPL-2.0

// Package config loads the audplay settings from the environment and from
// .env files, using github.com/joho/godotenv.
//
// Recognized variables:
//
//	AUDPLAY_SAMPLE_RATE     output rate in Hz (44100)
//	AUDPLAY_BUFFER_SIZE     bytes per hardware buffer, multiple of 4 (8192)
//	AUDPLAY_DMA_BUF_COUNT   transfer descriptors (4)
//	AUDPLAY_DMA_BUF_LEN     frames per descriptor (1024)
//	AUDPLAY_MAX_STAGING     staging budget in bytes (4M)
//	AUDPLAY_PROGRESS_EVERY  progress log interval in writes (20)
//	AUDPLAY_ROOT            sound directory (.)
//	AUDPLAY_FILE            file played on trigger
//	AUDPLAY_BACKEND         oto, portaudio, wav or null (oto)
//	AUDPLAY_OUTPUT          output file of the wav backend
//	AUDPLAY_LOG_LEVEL       zerolog level name (info)
//
// Sizes accept the K and M suffixes.
package config
