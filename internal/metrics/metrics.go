package metrics

const Namespace = "notes"
