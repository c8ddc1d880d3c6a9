/*
Package observability provides tools for monitoring a guessing session.

It turns domain.LifecycleHooks into prometheus counters and structured log
records, and lets several hook sets be combined into one.
*/
package observability
