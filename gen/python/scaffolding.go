package python

import (
	"fmt"
)

// renderPackageInit renders the top-level __init__.py.
func renderPackageInit(pkg, version string) string {
	return fmt.Sprintf(`"""
Messaging interfaces - Python

Python wrapper for the event-driven messaging interfaces.
Provides type-safe access to Pub/Sub topics and subscriptions.

Usage:
    from %[1]s.messaging import Topics

    # Access destinations
    destination = Topics.SPECIFICATION_CREATED
    topic = destination.topic
    subscription = destination.subscription
"""

__version__ = %[2]q

from %[1]s.messaging.topics import Topics
from %[1]s.messaging.destination import Destination, EventType

__all__ = [
    "Topics",
    "Destination",
    "EventType",
]
`, pkg, version)
}

// renderMessagingInit renders the messaging subpackage __init__.py.
func renderMessagingInit(pkg string) string {
	return fmt.Sprintf(`"""Messaging interfaces."""

from %[1]s.messaging.topics import Topics
from %[1]s.messaging.destination import Destination, EventType

__all__ = [
    "Topics",
    "Destination",
    "EventType",
]
`, pkg)
}
