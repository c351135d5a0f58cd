// Package rfc9110 implements the proactive content negotiation grammar of
// RFC 9110 (HTTP Semantics): list splitting, quality values, content coding
// equivalence, and the Accept and Accept-Encoding field values.
//
// Only the parts of the standard needed for content negotiation are
// implemented. File names and `§` quotes refer to RFC 9110 section numbers.
package rfc9110

// §  Internet Engineering Task Force (IETF)                  R. Fielding, Ed.
// §  Request for Comments: 9110                                         Adobe
// §  STD: 97                                               M. Nottingham, Ed.
// §  Obsoletes: 2818, 7230, 7231, 7232, 7233, 7235,                    Fastly
// §             7538, 7615, 7694                               J. Reschke, Ed.
// §  Category: Standards Track                                      greenbytes
// §  ISSN: 2070-1721                                                 June 2022
// §
// §                               HTTP Semantics
// §
// §  Abstract
// §
// §     The Hypertext Transfer Protocol (HTTP) is a stateless application-
// §     level protocol for distributed, collaborative, hypertext information
// §     systems.  This document describes the overall architecture of HTTP,
// §     establishes common terminology, and defines aspects of the protocol
// §     shared by all versions.
