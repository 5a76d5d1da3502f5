package internal

const ApplicationName = "updatewatch"
