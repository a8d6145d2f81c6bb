/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: maylee.go
Description: Package doc and version information for the Maylee NLP toolkit.
*/

// Package maylee is a statistical natural language processing toolkit:
// trainable name finding, language detection, and document categorization
// built on a descriptor-driven feature generation engine, with corpus
// collection and model packaging around it.
//
// The packages under pkg/ are importable as libraries; cmd/maylee wraps
// them in a command-line interface.
package maylee

// Version is the toolkit release version.
const Version = "1.0.0"
