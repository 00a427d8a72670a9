package help

const ColdstartYAML = `# corpusfreq Quick Start

commands:
  count_words: |
    corpusfreq count --root ./corpus

  count_bigrams: |
    corpusfreq count --root ./corpus --ngram 2

  bigger_pool: |
    corpusfreq count --root ./corpus --workers 8 --header 25

  config_file: |
    corpusfreq count --config config.yaml
    # explicit flags still win:
    corpusfreq count --config config.yaml --workers 2

config_file_keys:
  root_dir: "directory scanned recursively for .txt files"
  ngram_size: "sliding window width (default 1)"
  workers: "fixed worker pool size (default 4)"
  header: "entries printed per worker block (default 10)"

output:
  - "one block per worker, ids ascending"
  - "label line: --- worker K ---"
  - "then '<ngram>: <count>' lines, counts descending, ties by n-gram"
  - "a blank line ends each block"
  - "results stay on stdout; JSON logs and run stats go to stderr"

error_behavior:
  - "Bad flags or config file: fail fast before any worker starts"
  - "Unreadable input file: logged and skipped, run continues"
  - "Exit codes: 0=success, 1=usage error, 2=setup failure"
`
