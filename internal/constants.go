/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

const (
	UserAgent       = "pinochle-scorebot/0.1.2 (+https://github.com/mikeb26/pinochle-scorebot)"
	StateBucket     = "bopmatic-pinochle-scorebot-prod-state"
	WebCacheBucket  = "bopmatic-pinochle-scorebot-prod-webcache"
	StateKeyDefault = "state"
)
